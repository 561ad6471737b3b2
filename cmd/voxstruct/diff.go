package main

import (
	"bufio"
	"bytes"
	"os"

	"github.com/gonvenience/ytbx"
	"github.com/homeport/dyff/pkg/dyff"
)

// diffAgainst renders result to a scratch YAML file and compares it to
// against via dyff, in the teacher's own diffFiles style (ytbx.LoadFiles
// + dyff.HumanReport). Returns the human-readable report text and
// whether any differences were found.
func diffAgainst(result interface{}, against string) (string, bool, error) {
	tmp, err := os.CreateTemp("", "voxstruct-diff-*.yml")
	if err != nil {
		return "", false, err
	}
	defer os.Remove(tmp.Name())
	defer tmp.Close()

	if err := writeOutputTo(tmp, result); err != nil {
		return "", false, err
	}

	from, to, err := ytbx.LoadFiles(tmp.Name(), against)
	if err != nil {
		return "", false, err
	}

	report, err := dyff.CompareInputFiles(from, to)
	if err != nil {
		return "", false, err
	}

	reportWriter := &dyff.HumanReport{
		Report:       report,
		OmitHeader:   true,
		NoTableStyle: false,
	}

	var buf bytes.Buffer
	out := bufio.NewWriter(&buf)
	reportWriter.WriteReport(out)
	out.Flush()

	return buf.String(), len(report.Diffs) > 0, nil
}
