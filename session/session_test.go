//
// Copyright (c) 2025 Markku Rossi
//
// All rights reserved.
//

package session

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/markkurossi/esyn/format"
	"github.com/markkurossi/esyn/network"
	"github.com/markkurossi/esyn/spec"
	"github.com/markkurossi/esyn/synth"
	"github.com/markkurossi/esyn/tt"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

func newSession() (*Session, *bytes.Buffer) {
	log := logrus.New()
	log.SetOutput(io.Discard)
	out := new(bytes.Buffer)
	return New(nil, out, log), out
}

func checkFunction(t *testing.T, ntk *network.Network, hex string) {
	t.Helper()
	values := ntk.Simulate()
	if got := values[ntk.Outputs()[0]].Hex(); got != hex {
		t.Errorf("network computes %s, expected %s", got, hex)
	}
}

func readFile(t *testing.T, name string) string {
	t.Helper()
	data, err := os.ReadFile(name)
	if err != nil {
		t.Fatal(err)
	}
	return string(data)
}

func listDir(t *testing.T, dir string) []string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	sort.Strings(names)
	return names
}

func TestLoadSpec(t *testing.T) {
	s, _ := newSession()
	sp, err := s.LoadSpec("1000", true)
	if err != nil {
		t.Fatalf("LoadSpec failed: %v", err)
	}
	if sp.Describe() != "(2, 1, 8)" {
		t.Errorf("Describe=%s", sp.Describe())
	}
	if len(s.Functions()) != 1 || s.Functions()[0] != sp.Functions[0] {
		t.Errorf("session does not own the spec function")
	}

	if _, err := s.LoadSpec("123", false); err == nil {
		t.Errorf("LoadSpec accepted invalid hex")
	}
	if s.Specs.Len() != 1 {
		t.Errorf("spec store has %d entries", s.Specs.Len())
	}

	var buf bytes.Buffer
	if err := s.PrintSpec(&buf); err != nil {
		t.Fatalf("PrintSpec failed: %v", err)
	}
	if !strings.Contains(buf.String(), "f_1 = 8 (hex) -- 1000 (bin)") {
		t.Errorf("PrintSpec output:\n%s", buf.String())
	}
}

func TestSynthesize(t *testing.T) {
	s, out := newSession()

	_, err := s.Synthesize(context.Background(), 2)
	if !errors.Is(err, ErrNoSpec) {
		t.Errorf("Synthesize without spec returned %v", err)
	}
	if _, err := s.LoadSpec("8", false); err != nil {
		t.Fatal(err)
	}
	if _, err := s.Synthesize(context.Background(), 6); err == nil {
		t.Errorf("Synthesize accepted fanin 6")
	}

	result, err := s.Synthesize(context.Background(), 2)
	if err != nil || result != synth.Success {
		t.Fatalf("Synthesize: result=%s err=%v", result, err)
	}
	if out.String() != "SUCCESS\n" {
		t.Errorf("Synthesize output %q", out.String())
	}
	if s.Networks.Len() != 1 {
		t.Errorf("network store has %d entries", s.Networks.Len())
	}

	var buf bytes.Buffer
	if err := s.PrintNetwork(&buf, "native"); err != nil {
		t.Fatal(err)
	}
	if buf.String() != "C = 1000 a b\n" {
		t.Errorf("native listing %q", buf.String())
	}

	buf.Reset()
	if err := s.PrintNetwork(&buf, "iwls"); err != nil {
		t.Fatal(err)
	}
	if buf.String() != "\nC = 1000 a b" {
		t.Errorf("IWLS listing %q", buf.String())
	}

	buf.Reset()
	s.PrintNetworks(&buf)
	if !strings.Contains(buf.String(), "(2, 1, 1)") {
		t.Errorf("network store listing:\n%s", buf.String())
	}
}

func TestSynthesizeProfile(t *testing.T) {
	s, out := newSession()
	s.Params.Profile = true
	if _, err := s.LoadSpec("96", false); err != nil {
		t.Fatal(err)
	}
	result, err := s.Synthesize(context.Background(), 2)
	if err != nil || result != synth.Success {
		t.Fatalf("Synthesize: result=%s err=%v", result, err)
	}
	if !strings.Contains(out.String(), "Encode 2") {
		t.Errorf("profile report missing:\n%s", out.String())
	}
	ntk, ok := s.Networks.Current()
	if !ok {
		t.Fatalf("no network")
	}
	checkFunction(t, ntk, "96")
}

func TestEnumerate(t *testing.T) {
	s, _ := newSession()
	f, err := tt.ParseHex("96")
	if err != nil {
		t.Fatal(err)
	}
	sp := spec.ForFunction(f)

	var buf bytes.Buffer
	count, err := s.Enumerate(context.Background(), sp, 2, 2, &buf)
	if err != nil {
		t.Fatalf("Enumerate failed: %v", err)
	}
	if count == 0 {
		t.Fatalf("no solutions")
	}
	networks, err := format.ParseIWLS(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("ParseIWLS failed: %v", err)
	}
	if len(networks) != count {
		t.Errorf("parsed %d networks, expected %d", len(networks), count)
	}
	for _, ntk := range networks {
		checkFunction(t, ntk, "96")
		if ntk.NumNodes() != 2 {
			t.Errorf("network has %d nodes", ntk.NumNodes())
		}
	}

	_, err = s.Enumerate(context.Background(), sp, 5, 2, &buf)
	if !errors.Is(err, format.ErrUnsupportedFanin) {
		t.Errorf("Enumerate with fanin 5 returned %v", err)
	}
}

func TestEnumerateTimeout(t *testing.T) {
	s, _ := newSession()
	s.Params.Timeout = time.Nanosecond
	f, err := tt.ParseHex("e8e8e8e8e8e8e8e8")
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	count, err := s.Enumerate(context.Background(), spec.ForFunction(f), 2, 8,
		&buf)
	if !errors.Is(err, ErrTimeout) {
		t.Errorf("Enumerate returned %v, expected timeout", err)
	}
	if count != 0 || buf.Len() != 0 {
		t.Errorf("Enumerate wrote %d solutions: %q", count, buf.String())
	}
}

func TestIWLS2018(t *testing.T) {
	s, _ := newSession()
	dir := t.TempDir()

	name, count, err := s.IWLS2018(context.Background(), "8", 2, 1, dir)
	if err != nil {
		t.Fatalf("IWLS2018 failed: %v", err)
	}
	if count != 1 {
		t.Errorf("IWLS2018 found %d solutions", count)
	}
	if name != filepath.Join(dir, "8-2-1.bln") {
		t.Errorf("IWLS2018 file %s", name)
	}
	if data := readFile(t, name); data != "\nC = 1000 a b\n" {
		t.Errorf("solution file %q", data)
	}
}

func TestIWLS2018Unsupported(t *testing.T) {
	s, _ := newSession()
	dir := t.TempDir()

	_, _, err := s.IWLS2018(context.Background(), "8", 5, 1, dir)
	if !errors.Is(err, format.ErrUnsupportedFanin) {
		t.Errorf("fanin 5 returned %v", err)
	}
	_, _, err = s.IWLS2018(context.Background(), "8", 3, 1, dir)
	if !errors.Is(err, synth.ErrUnsupported) {
		t.Errorf("2-input function with fanin 3 returned %v", err)
	}
	if _, _, err = s.IWLS2018(context.Background(), "123", 2, 1, dir); err == nil {
		t.Errorf("invalid truth table accepted")
	}
	if files := listDir(t, dir); len(files) != 0 {
		t.Errorf("rejected benchmarks created files %v", files)
	}
}

func TestIWLS2018Timeout(t *testing.T) {
	s, _ := newSession()
	s.Params.Timeout = time.Nanosecond
	dir := t.TempDir()

	name, count, err := s.IWLS2018(context.Background(), "e8e8e8e8e8e8e8e8",
		2, 8, dir)
	if !errors.Is(err, ErrTimeout) {
		t.Fatalf("IWLS2018 returned %v, expected timeout", err)
	}
	if count != 0 {
		t.Errorf("IWLS2018 found %d solutions", count)
	}
	if name != filepath.Join(dir, "e8e8e8e8e8e8e8e8-2-8.bln") {
		t.Errorf("IWLS2018 file %s", name)
	}
	if !strings.Contains(err.Error(), name) {
		t.Errorf("error %q does not name the file", err)
	}
}

func TestFIWLS2018(t *testing.T) {
	s, out := newSession()
	dir := t.TempDir()

	benchmarks := filepath.Join(dir, "benchmarks.txt")
	err := os.WriteFile(benchmarks,
		[]byte("# function fanin gates\n96 2 2\n8 2 1\n8 5 1\n"), 0644)
	if err != nil {
		t.Fatal(err)
	}
	if err := s.FIWLS2018(context.Background(), benchmarks, dir); err != nil {
		t.Fatalf("FIWLS2018 failed: %v", err)
	}
	for _, want := range []string{"96-2-2.bln", "8-2-1.bln", "SUCCESS"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("summary does not contain %q:\n%s", want, out.String())
		}
	}

	f, err := os.Open(filepath.Join(dir, "96-2-2.bln"))
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	networks, err := format.ParseIWLS(f)
	if err != nil {
		t.Fatalf("ParseIWLS failed: %v", err)
	}
	if len(networks) == 0 {
		t.Errorf("no solutions in 96-2-2.bln")
	}

	err = s.FIWLS2018(context.Background(), filepath.Join(dir, "missing.txt"),
		dir)
	if err == nil {
		t.Errorf("FIWLS2018 accepted a missing benchmark file")
	}
}

func TestFIWLS2018SkipUnsupported(t *testing.T) {
	s, out := newSession()
	dir := t.TempDir()
	outDir := filepath.Join(dir, "out")
	if err := os.Mkdir(outDir, 0755); err != nil {
		t.Fatal(err)
	}

	benchmarks := filepath.Join(dir, "b.txt")
	err := os.WriteFile(benchmarks, []byte("8 3 1\n96 2 2\n"), 0644)
	if err != nil {
		t.Fatal(err)
	}
	if err := s.FIWLS2018(context.Background(), benchmarks, outDir); err != nil {
		t.Fatalf("FIWLS2018 failed: %v", err)
	}
	if diff := cmp.Diff([]string{"96-2-2.bln"}, listDir(t, outDir)); diff != "" {
		t.Errorf("output files mismatch (-want +got):\n%s", diff)
	}
	if strings.Contains(out.String(), "8-3-1.bln") {
		t.Errorf("summary lists skipped benchmark:\n%s", out.String())
	}
}

func TestFIWLS2018Timeout(t *testing.T) {
	s, out := newSession()
	s.Params.Timeout = time.Nanosecond
	dir := t.TempDir()

	benchmarks := filepath.Join(dir, "benchmarks.txt")
	err := os.WriteFile(benchmarks, []byte("e8e8e8e8e8e8e8e8 2 8\n"), 0644)
	if err != nil {
		t.Fatal(err)
	}
	if err := s.FIWLS2018(context.Background(), benchmarks, dir); err != nil {
		t.Fatalf("FIWLS2018 failed: %v", err)
	}
	if !strings.Contains(out.String(), "TIMEOUT") {
		t.Errorf("summary does not report timeout:\n%s", out.String())
	}
}

func TestStore(t *testing.T) {
	var store Store[int]
	if _, ok := store.Current(); ok {
		t.Errorf("empty store has current value")
	}

	store.Extend(1)
	store.Extend(2)
	if v, ok := store.Current(); !ok || v != 2 {
		t.Errorf("Current=%d,%v, expected 2", v, ok)
	}
	if !store.Select(0) {
		t.Errorf("Select(0) failed")
	}
	if store.Select(2) {
		t.Errorf("Select(2) succeeded")
	}
	if v, _ := store.Current(); v != 1 {
		t.Errorf("Current=%d, expected 1", v)
	}
	if diff := cmp.Diff([]int{1, 2}, store.Items()); diff != "" {
		t.Errorf("Items mismatch (-want +got):\n%s", diff)
	}
}
