//go:build !amd64 && !arm64

package linalg

func detectLevel() DispatchLevel { return DispatchScalar }
