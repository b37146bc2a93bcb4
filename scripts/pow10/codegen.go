package main

import (
	"bufio"
	"bytes"
	"flag"
	"fmt"
	"go/format"
	"math/big"
	"os"
	"path/filepath"
	"text/template"
)

type power struct {
	Exp    int
	Digits string
}

type table struct {
	Limit  int
	Powers []power
}

func main() {
	limit := flag.Int("limit", 38, "largest exponent to precompute")
	flag.Parse()

	// Compute the powers of ten
	pows := computePowers(*limit)

	// Generate Go code from the powers using a template
	code, err := generateGoCode(filepath.Join("scripts", "pow10", "pow10_data.tmpl"), pows)
	if err != nil {
		panic(fmt.Errorf("error generating Go code: %v", err))
	}

	// Write the generated Go code to a file
	err = writeToFile("pow10_data.go", code)
	if err != nil {
		panic(fmt.Errorf("error writing to file: %v", err))
	}
}

func computePowers(limit int) []power {
	ten := big.NewInt(10)
	p := big.NewInt(1)
	pows := make([]power, 0, limit+1)
	for e := 0; e <= limit; e++ {
		pows = append(pows, power{Exp: e, Digits: p.String()})
		p = new(big.Int).Mul(p, ten)
	}
	return pows
}

func generateGoCode(filename string, pows []power) ([]byte, error) {
	tmpl, err := template.New(filepath.Base(filename)).ParseFiles(filename)
	if err != nil {
		return nil, err
	}

	// Execute the template
	var output bytes.Buffer
	err = tmpl.Execute(&output, table{Limit: len(pows) - 1, Powers: pows})
	if err != nil {
		return nil, err
	}

	// Format the output as Go code
	formatted, err := format.Source(output.Bytes())
	if err != nil {
		return nil, err
	}
	return formatted, nil
}

func writeToFile(filename string, content []byte) error {
	out, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer func() { _ = out.Close() }()
	writer := bufio.NewWriter(out)
	_, err = writer.Write(content)
	if err != nil {
		return err
	}
	err = writer.Flush()
	if err != nil {
		return err
	}
	return nil
}
