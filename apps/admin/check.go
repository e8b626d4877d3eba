package main

import (
	"context"
	"fmt"

	"github.com/demoaplikasi02-prog/tkitharvysyah/core/school"
)

func (cli *commandLine) check() error {
	ctx := context.Background()

	var failed int
	for _, table := range school.Tables {
		records, err := cli.src.Records(ctx, table)
		if err != nil {
			failed++
			fmt.Fprintf(cli.out, "%-10s unavailable: %v\n", table, err)
			continue
		}
		fmt.Fprintf(cli.out, "%-10s %d rows\n", table, len(records))
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d tables unavailable", failed, len(school.Tables))
	}
	return nil
}
