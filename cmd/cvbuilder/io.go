package main

import "io"

// readCloser and writeCloser adapt cobra's streams to the io.ReadCloser and
// io.WriteCloser promptui expects, without closing the underlying stream.
type readCloser struct{ io.Reader }

func (readCloser) Close() error { return nil }

type writeCloser struct{ io.Writer }

func (writeCloser) Close() error { return nil }
