package main

import "github.com/goplus/apkver/cmd/apkver/internal"

func main() {
	internal.Execute()
}
