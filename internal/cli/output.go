// Package cli wires the §4.5 command services into a cobra command tree:
// one subcommand per host language, then one per command, printing the
// resulting envelope as a single JSON object on stdout (§6).
package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"reflect"

	"github.com/pmezard/go-difflib/difflib"

	"github.com/syntaxpresso/core-sub005/internal/model"
)

// emit prints env as the sole JSON object on stdout and returns the
// process exit code (§6: 0 iff succeed, 1 otherwise).
func emit(env *model.Envelope) int {
	data, err := json.Marshal(env)
	if err != nil {
		fmt.Fprintln(os.Stdout, `{"succeed":false,"errorReason":"failed to encode response"}`)
		return 1
	}
	fmt.Fprintln(os.Stdout, string(data))
	if env.Succeed {
		return 0
	}
	return 1
}

// outputFilePath extracts the "FilePath" field from env.Data by
// reflection, when present — commands that write exactly one file all
// name their payload field this way.
func outputFilePath(env *model.Envelope) (string, bool) {
	if !env.Succeed || env.Data == nil {
		return "", false
	}
	v := reflect.ValueOf(env.Data)
	if v.Kind() != reflect.Struct {
		return "", false
	}
	f := v.FieldByName("FilePath")
	if !f.IsValid() || f.Kind() != reflect.String {
		return "", false
	}
	return f.String(), true
}

// printDiffIfVerbose diffs before (the content captured ahead of the
// write, labelled beforePath; empty when the file is newly created)
// against the command's output file, and writes a unified diff to
// stderr — never stdout, so
// this can never violate §6's single-JSON-object contract. Grounded on
// internal/util/file.go's UnifiedDiff + cmd/morfx's --diff flag, using
// the same github.com/pmezard/go-difflib dependency.
func printDiffIfVerbose(verbose bool, label, beforePath string, before []byte, env *model.Envelope) {
	if !verbose {
		return
	}
	afterPath, ok := outputFilePath(env)
	if !ok {
		return
	}
	after, err := os.ReadFile(afterPath)
	if err != nil {
		return
	}
	diff := difflib.UnifiedDiff{
		A:        difflib.SplitLines(string(before)),
		B:        difflib.SplitLines(string(after)),
		FromFile: beforePath,
		ToFile:   afterPath,
		Context:  3,
	}
	text, err := difflib.GetUnifiedDiffString(diff)
	if err != nil || text == "" {
		return
	}
	fmt.Fprintf(os.Stderr, "--- %s\n%s", label, text)
}

// readBeforeOrEmpty reads path's content for a pre-write diff snapshot,
// returning nil (not an error) when the file doesn't exist yet.
func readBeforeOrEmpty(path string) []byte {
	if path == "" {
		return nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil
	}
	return data
}
