// SPDX-LICENSE-IDENTIFIER: GPL-2.0-ONLY
// (C) 2024 Author: <kisfg@hotmail.com>
package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"cryptobase/config"
	hashciphers "cryptobase/cryptoProtect/hashCiphers"
	"cryptobase/defErr"
	"cryptobase/ffi"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"
)

func TestRunBench(t *testing.T) {
	table := ffi.NewTable()
	table.Generic("sm3", (&hashciphers.SM3{}).NewStream)
	table.Fixed(hashciphers.SHA256Fixed)

	res, err := runBench(context.Background(), table, []string{"sm3", "sha256-fixed"}, 1024, 20*time.Millisecond)
	require.NoError(t, err)
	require.Len(t, res, 2)
	for _, r := range res {
		require.Positive(t, r.Bytes)
		require.Positive(t, r.Throughput())
	}
	require.Zero(t, table.Live())

	_, err = runBench(context.Background(), table, []string{"md4"}, 1024, time.Millisecond)
	require.ErrorIs(t, err, defErr.ErrUnsupportedDigest)
}

func TestRunBenchCancelled(t *testing.T) {
	table := ffi.NewTable()
	table.Generic("sm3", (&hashciphers.SM3{}).NewStream)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := runBench(ctx, table, []string{"sm3"}, 64, time.Second)
	require.ErrorIs(t, err, context.Canceled)
	require.Zero(t, table.Live())
}

func TestSumFiles(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.txt")
	b := filepath.Join(dir, "b.txt")
	require.NoError(t, os.WriteFile(a, []byte(`abc`), 0o600))
	require.NoError(t, os.WriteFile(b, nil, 0o600))

	s := (&hashciphers.Sha256{}).NewStream()
	defer s.Dispose()
	var buf bytes.Buffer
	require.NoError(t, sumFiles(context.Background(), &buf, s, []string{a, b}))
	require.Equal(t,
		"ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad  "+a+"\n"+
			"e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855  "+b+"\n",
		buf.String())

	require.Error(t, sumFiles(context.Background(), &buf, s, []string{filepath.Join(dir, "missing")}))
}

func TestBenchConfigOverlaysGlobal(t *testing.T) {
	path := filepath.Join(t.TempDir(), "digest.yaml")
	require.NoError(t, os.WriteFile(path, []byte("SpeedTest:\n  Algorithms: [sm3]\n  Duration: 50ms\n"), 0o600))
	_, err := config.LoadDigestYAML(path)
	require.NoError(t, err)

	cmd := &cobra.Command{}
	addBenchFlags(cmd)
	require.NoError(t, cmd.Flags().Set("size", "4096"))

	cfg := benchConfig(cmd)
	require.Equal(t, []string{"sm3"}, cfg.SpeedTest.Algorithms)
	require.Equal(t, "50ms", cfg.SpeedTest.Duration)
	require.Equal(t, 4096, cfg.SpeedTest.BufferSize)
	// the global itself is left alone.
	require.Equal(t, config.DefaultDigestConfig().SpeedTest.BufferSize, config.Global().SpeedTest.BufferSize)
}

func TestBenchResultThroughput(t *testing.T) {
	r := benchResult{Bytes: 1 << 21, Elapsed: time.Second}
	require.InDelta(t, 2.0, r.Throughput(), 1e-9)
	require.Zero(t, benchResult{Bytes: 10}.Throughput())
}
