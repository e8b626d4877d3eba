package main

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/demoaplikasi02-prog/tkitharvysyah/core/school"
	"github.com/demoaplikasi02-prog/tkitharvysyah/core/sheet"
)

type sourceStub struct {
	records map[string][]sheet.Record
	err     error
}

func (s *sourceStub) Records(_ context.Context, table string) ([]sheet.Record, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.records[table], nil
}

func setup(src *sourceStub) (*commandLine, *bytes.Buffer) {
	var out bytes.Buffer
	return &commandLine{src: src, out: &out}, &out
}

type cliTest struct {
	name       string
	args       []string // without program name
	wantErr    error
	wantErrStr string
}

func Test_commandLine_run(t *testing.T) {
	cli, _ := setup(&sourceStub{})

	tests := []cliTest{
		{name: "no command", wantErr: errHelp},
		{name: "unknown command", args: []string{"lol"}, wantErr: errHelp},
		{name: "export without table", args: []string{"export"}, wantErr: errHelp},
		{name: "export unknown table", args: []string{"export", "-table", "lol"}, wantErrStr: `unknown table "lol"`},
	}
	for _, tt := range tests {
		args := append([]string{"admin"}, tt.args...)

		t.Run(tt.name, func(t *testing.T) {
			err := cli.run(args)
			if tt.wantErr != nil {
				if err != tt.wantErr {
					t.Errorf("cli.run() error = %v, wantErr %v", err, tt.wantErr)
				}
			} else if tt.wantErrStr != "" {
				if err == nil || err.Error() != tt.wantErrStr {
					t.Errorf("cli.run() error = %v, wantErrStr %s", err, tt.wantErrStr)
				}
			} else if err != nil {
				t.Errorf("cli.run() unexpected error = %v", err)
			}
		})
	}
}

func Test_commandLine_check(t *testing.T) {
	cli, out := setup(&sourceStub{records: map[string][]sheet.Record{
		school.TableStudent: {
			{"Name": "Aisyah", "NISN": "0012345678", "Class": "A1"},
			{"Name": "Bilal", "NISN": "0012345679", "Class": "A2"},
		},
	}})

	if err := cli.run([]string{"admin", "check"}); err != nil {
		t.Fatalf("cli.run() unexpected error = %v", err)
	}
	if got := out.String(); !strings.Contains(got, "Student    2 rows") {
		t.Errorf("check output missing Student count, got:\n%s", got)
	}

	cli, _ = setup(&sourceStub{err: errors.New("boom")})
	err := cli.run([]string{"admin", "check"})
	if err == nil || err.Error() != "6 of 6 tables unavailable" {
		t.Errorf("cli.run() error = %v, want all tables unavailable", err)
	}
}

func Test_commandLine_export(t *testing.T) {
	cli, out := setup(&sourceStub{records: map[string][]sheet.Record{
		school.TableStudent: {
			{"Name": "Aisyah", "NISN": "0012345678", "Class": "A1"},
			{"Name": "Umar, Jr", "NISN": "0012345681", "Class": "A2"},
		},
	}})

	if err := cli.run([]string{"admin", "export", "-table", "Student"}); err != nil {
		t.Fatalf("cli.run() unexpected error = %v", err)
	}

	want := "Name,NISN,Class,Link Photo\n" +
		"Aisyah,0012345678,A1,\n" +
		`"Umar, Jr",0012345681,A2,` + "\n"
	if got := out.String(); got != want {
		t.Errorf("export output = %q, want %q", got, want)
	}
}
