package langdetect

import (
	"testing"
)

func BenchmarkDetectGo(b *testing.B) {
	code := []byte(`package main

import "fmt"

func main() {
	fmt.Println("Hello, World!")
}`)
	b.ResetTimer()
	for range b.N {
		Detect(code)
	}
}

func BenchmarkDetectClassifier(b *testing.B) {
	code := []byte(`just a sentence that matches no pattern at all`)
	b.ResetTimer()
	for range b.N {
		Detect(code)
	}
}

func BenchmarkDetectFile(b *testing.B) {
	code := []byte(`print("hi")`)
	b.ResetTimer()
	for range b.N {
		DetectFile("hello.go", code)
	}
}
