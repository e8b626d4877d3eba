package main

import (
	"context"
	"fmt"

	"github.com/demoaplikasi02-prog/tkitharvysyah/core/sheet"
)

func (cli *commandLine) export(table string) error {
	header, ok := tableHeaders[table]
	if !ok {
		return fmt.Errorf("unknown table %q", table)
	}
	records, err := cli.src.Records(context.Background(), table)
	if err != nil {
		return err
	}
	fmt.Fprint(cli.out, sheet.Marshal(records, header))
	return nil
}
