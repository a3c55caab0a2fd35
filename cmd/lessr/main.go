package main

import (
	"os"

	"github.com/gdamore/tcell/v2"
	apppkg "github.com/kk-code-lab/lessr/internal/app"
)

func main() {
	// Keep multi-byte text readable on terminals whose locale tcell cannot map.
	tcell.SetEncodingFallback(tcell.EncodingFallbackUTF8)

	os.Exit(apppkg.Main(os.Args[1:], os.Getenv, os.Stdout, os.Stderr))
}
