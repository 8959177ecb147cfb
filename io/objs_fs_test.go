package io

import (
	"bytes"
	"context"
	"errors"
	"io/ioutil"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

func newTestStorage(t *testing.T) Storage {
	root, err := ioutil.TempDir("", "agenda-io-")
	require.NoError(t, err)
	t.Cleanup(func() { _ = os.RemoveAll(root) })

	storage, err := New(Config{Root: root, Log: logrus.New()})
	require.NoError(t, err)
	return storage
}

func TestFSWriteRead(t *testing.T) {
	ctx := context.Background()
	storage := newTestStorage(t)

	wo, err := storage.NewWriteObject("out/obce.txt")
	require.NoError(t, err)
	require.NoError(t, wo.Write(ctx, strings.NewReader("1;a\n2;b\n")))

	data, err := ReadObject(ctx, storage, "out/obce.txt")
	require.NoError(t, err)
	require.Equal(t, "1;a\n2;b\n", string(data))

	// overwrite with chunked write
	payload := bytes.Repeat([]byte("x"), 1000)
	require.NoError(t, wo.WriteChunked(ctx, bytes.NewReader(payload), 64))
	data, err = ReadObject(ctx, storage, "out/obce.txt")
	require.NoError(t, err)
	require.Equal(t, payload, data)
}

func TestFSNotFound(t *testing.T) {
	ctx := context.Background()
	storage := newTestStorage(t)

	_, err := storage.OpenObject(ctx, "missing.csv")
	require.True(t, errors.Is(err, ErrObjNotFound))

	require.NoError(t, storage.DeleteObject(ctx, "missing.csv"))
}

func TestFSListAndDelete(t *testing.T) {
	ctx := context.Background()
	storage := newTestStorage(t)

	for _, name := range []string{"a.csv", "b.csv", "c.csv"} {
		wo, err := storage.NewWriteObject(name)
		require.NoError(t, err)
		require.NoError(t, wo.Write(ctx, strings.NewReader(name)))
	}

	names := []string{}
	err := storage.ListObjects(ctx, "", func(path string, size int64, created time.Time) error {
		names = append(names, path)
		return nil
	})
	require.NoError(t, err)
	require.Equal(t, []string{"a.csv", "b.csv", "c.csv"}, names)

	count := 0
	err = storage.ListObjects(ctx, "", func(path string, size int64, created time.Time) error {
		count++
		return ErrStopListing
	})
	require.NoError(t, err)
	require.Equal(t, 1, count)

	require.NoError(t, storage.DeleteObject(ctx, "b.csv"))
	_, err = storage.OpenObject(ctx, "b.csv")
	require.True(t, errors.Is(err, ErrObjNotFound))
}

func TestFSCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	storage := newTestStorage(t)

	_, err := storage.OpenObject(ctx, "a.csv")
	require.Equal(t, context.Canceled, err)

	wo, err := storage.NewWriteObject("a.csv")
	require.NoError(t, err)
	require.Equal(t, context.Canceled, wo.Write(ctx, strings.NewReader("x")))
}
