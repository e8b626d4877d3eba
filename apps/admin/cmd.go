package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/demoaplikasi02-prog/tkitharvysyah/core/school"
	"github.com/demoaplikasi02-prog/tkitharvysyah/core/sheet"
)

var errHelp = errors.New("help provided")

// tableHeaders fixes the column order used when exporting a table as CSV.
var tableHeaders = map[string][]string{
	school.TableTeacher:   {"Name", "Phone", "Class", "Link Photo"},
	school.TableStudent:   {"Name", "NISN", "Class", "Link Photo"},
	school.TableHafalan:   {"Category", "Item Name", "Semester"},
	school.TablePrincipal: {"Name", "Phone", "Link Photo"},
	school.TableSPP:       {"NISN", "Kategori", "Bulan", "Nominal", "Status", "Tanggal Bayar"},
	school.TableScore:     {"Timestamp", "Student ID", "Category", "Item Name", "Score", "Date", "Notes", "Semester", "Teacher Name"},
}

type recordSource interface {
	Records(ctx context.Context, table string) ([]sheet.Record, error)
}

type commandLine struct {
	src recordSource
	out io.Writer
}

func (cli *commandLine) printUsage() {
	fmt.Fprintln(cli.out, "Usage:")
	fmt.Fprintln(cli.out, "  check                - fetch every table and report row counts")
	fmt.Fprintln(cli.out, "  export -table TABLE  - print a table as CSV")
}

func (cli *commandLine) run(args []string) error {
	if len(args) < 2 {
		cli.printUsage()
		return errHelp
	}

	exportCmd := flag.NewFlagSet("export", flag.ExitOnError)
	exportTable := exportCmd.String("table", "", "The logical table name (Teacher, Student, Hafalan, Principal, SPP or Score).")

	switch args[1] {
	case "check":
		return cli.check()
	case "export":
		if err := exportCmd.Parse(args[2:]); err != nil {
			return err
		}
		if *exportTable == "" {
			exportCmd.Usage()
			return errHelp
		}
		return cli.export(*exportTable)
	default:
		cli.printUsage()
		return errHelp
	}
}
