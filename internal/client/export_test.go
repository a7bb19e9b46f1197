package client

// This file is only for test purpose and is only loaded by test framework.

var (
	Seal         = seal
	Unseal       = unseal
	ReadProvider = readProvider
	Render       = render
)
