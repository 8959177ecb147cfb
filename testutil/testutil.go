package testutil

import (
	"context"
	"crypto/sha512"
	"encoding/base64"
	"encoding/binary"
	"fmt"
	"io/ioutil"
	"os"
	"strconv"

	"github.com/sirupsen/logrus"

	aio "github.com/neganovalexey/agenda/io"
)

// GetTestIoConfig constructs storage config rooted at a fresh temp dir with specified logger.
// Returned func removes the dir.
func GetTestIoConfig(log *logrus.Logger) (aio.Config, func()) {
	root, err := ioutil.TempDir("", "agenda-test-")
	if err != nil {
		panic(err)
	}
	cfg := aio.Config{
		Root: root,
		Log:  log,
		Ctx:  context.Background(),
	}
	return cfg, func() { _ = os.RemoveAll(root) }
}

// RandomStrKey returns stable random key for given n of length sz
// nolint: unparam
func RandomStrKey(n, sz int) (res string) {
	for len(res) < sz {
		buf := [8]byte{}
		binary.BigEndian.PutUint64(buf[:], uint64(n))
		h := sha512.Sum512(buf[:])
		res = res + base64.StdEncoding.EncodeToString(h[:])
	}
	return res[:sz]
}

// AscendingStrKey returns stable ascending keys for given n of length sz
func AscendingStrKey(n int, sz int) string {
	if len(strconv.Itoa(n)) > sz {
		panic("too small string size")
	}
	return fmt.Sprintf("%0*d", sz, n)
}
