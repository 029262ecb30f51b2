// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"flag"
	"io"
	"log"
	"os"

	"github.com/ezrec/ls8/cpu"
	"github.com/ezrec/ls8/emulator"
	"github.com/ezrec/ls8/internal"
	"github.com/ezrec/ls8/translate"
)

func main() {
	var compile string
	var save bool
	var digest bool
	var output string
	var trace bool
	var verbose bool
	var ticks int

	flag.StringVar(&compile, "c", "", ".asm file to compile")
	flag.BoolVar(&save, "s", false, "Save program image to output, do not execute")
	flag.BoolVar(&digest, "d", false, "Print program digest to output, do not execute")
	flag.StringVar(&output, "o", "-", "Output (PRN values, or image with -s)")
	flag.BoolVar(&trace, "t", false, "Trace each instruction to stderr")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")
	flag.IntVar(&ticks, "n", 0, "Maximum instructions to execute (0 is unlimited)")

	flag.Parse()

	emu := emulator.NewEmulator()
	emu.Verbose = verbose
	emu.MaxTicks = ticks

	var prog *cpu.Program

	switch {
	case len(compile) != 0:
		if flag.NArg() != 0 {
			log.Fatalf("%v: Unknown arguments: %v", os.Args[0], flag.Args())
		}

		inf, err := os.Open(compile)
		if err != nil {
			log.Fatalf("%v: %v", compile, err)
		}
		defer inf.Close()

		asm := &cpu.Assembler{Verbose: verbose}
		for key, value := range internal.IterSeq2Sorted(emu.Defines()) {
			asm.Predefine(key, value)
		}
		prog, err = asm.Parse(inf)
		if err != nil {
			log.Fatalf("%v: %v", compile, err)
		}
	case flag.NArg() == 1:
		image := flag.Arg(0)
		inf, err := os.Open(image)
		if err != nil {
			log.Fatalf("%v: %v", image, err)
		}
		defer inf.Close()

		prog, err = cpu.LoadImage(inf)
		if err != nil {
			log.Fatalf("%v: %v", image, err)
		}
	default:
		log.Fatalf("usage: %v [flags] (-c file.asm | file.ls8)", os.Args[0])
	}

	var ouf io.Writer = os.Stdout
	if output != "-" {
		file, err := os.Create(output)
		if err != nil {
			log.Fatalf("%v: %v", output, err)
		}
		defer file.Close()
		ouf = file
	}

	if digest {
		err := translate.Fprintln(ouf, "%v", prog.Digest())
		if err != nil {
			log.Fatalf("%v: %v", output, err)
		}
		return
	}

	if save {
		err := prog.WriteImage(ouf)
		if err != nil {
			log.Fatalf("%v: %v", output, err)
		}
		return
	}

	emu.Program = prog
	emu.Tape.Output = ouf
	if trace {
		emu.Cpu.Trace = os.Stderr
	}

	err := emu.Reset()
	if err != nil {
		log.Fatal(err)
	}

	err = emu.Run()
	if verbose {
		log.Printf("ls8: stopped at pc 0x%02x after %d instructions", emu.Pc(), emu.Ticks())
	}
	if err != nil {
		if emulator.Halted(err) {
			// Unrecognized instructions stop the program, but are
			// not a failure of the emulator.
			log.Print(err)
			return
		}
		log.Fatal(err)
	}
}
