// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/ezrec/emu80/cpu"
	"github.com/ezrec/emu80/emulator"
)

func main() {
	var compile string
	var listing bool
	var input string
	var output string
	var strict bool
	var verbose bool

	flag.StringVar(&compile, "c", "", ".asm file to compile")
	flag.BoolVar(&listing, "l", false, "Print the assembly listing, do not execute")
	flag.StringVar(&input, "i", "-", "Console input")
	flag.StringVar(&output, "o", "-", "Console output")
	flag.BoolVar(&strict, "s", false, "Stop on undefined opcodes")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")

	flag.Parse()

	if flag.NArg() != 0 {
		log.Fatalf("%v: Unknown arguments: %v", os.Args[0], flag.Args())
	}

	emu := emulator.NewEmulator()
	emu.Verbose = verbose
	emu.Strict = strict

	// Compile a new program image.
	if len(compile) != 0 {
		inf, err := os.Open(compile)
		if err != nil {
			log.Fatalf("%v: %v", compile, err)
		}
		defer inf.Close()

		asm := &cpu.Assembler{}
		for attr, value := range emu.Defines() {
			asm.Predefine(attr, value)
		}
		emu.Program, err = asm.Parse(inf)
		if err != nil {
			log.Fatalf("%v: %v", compile, err)
		}
	}

	if listing {
		fmt.Print(emu.Program.Listing())
		return
	}

	if input == "-" {
		emu.Con.Input = os.Stdin
	} else {
		inf, err := os.Open(input)
		if err != nil {
			log.Fatalf("%v: %v", input, err)
		}
		defer inf.Close()
		emu.Con.Input = inf
	}

	if output == "-" {
		emu.Con.Output = os.Stdout
	} else {
		ouf, err := os.Create(output)
		if err != nil {
			log.Fatalf("%v: %v", output, err)
		}
		defer ouf.Close()
		emu.Con.Output = ouf
	}

	emu.Reset()
	err := emu.Run()
	if err != nil {
		log.Fatal(err)
	}

	if verbose {
		fmt.Print(emu.Cpu.String())
	}
}
