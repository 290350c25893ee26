package chatalert

import (
	goErrors "github.com/go-errors/errors"
	pingcapErrors "github.com/pingcap/errors"
	pkgErrors "github.com/pkg/errors"
)

// Helpers producing stack-bearing errors for the stacktrace tests.

func failedFetch() error {
	return pkgErrors.New("fetch failed")
}

func failedParse() error {
	return pingcapErrors.New("parse failed")
}

func failedDecode() error {
	return goErrors.New("decode failed")
}
