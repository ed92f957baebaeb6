package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/afg984/archi-project-1/image"
	"github.com/afg984/archi-project-1/memory"
	"github.com/afg984/archi-project-1/script"
)

func loadImage(name string) (img *image.Image) {
	file, err := os.Open(name)
	if err != nil {
		log.Fatalf("%v: %v", name, err)
	}
	defer file.Close()

	img = &image.Image{}
	err = img.Unmarshal(file)
	if err != nil {
		log.Fatalf("%v: %v", name, err)
	}

	return
}

func main() {
	var size int
	var text string
	var data string
	var run string
	var write string
	var sp uint
	var words int
	var dump bool
	var verbose bool

	flag.IntVar(&size, "m", 1024, "memory size in bytes")
	flag.StringVar(&text, "t", "", "text image (iimage.bin) to load at its entry point")
	flag.StringVar(&data, "d", "", "data image (dimage.bin) to load at address 0")
	flag.StringVar(&run, "s", "", "script to run against the memory")
	flag.StringVar(&write, "w", "", "data image to write")
	flag.UintVar(&sp, "sp", 0, "stack pointer header value for -w")
	flag.IntVar(&words, "n", 0, "word count for -w (0 for the whole memory)")
	flag.BoolVar(&dump, "x", false, "hex dump memory words to stdout")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")

	flag.Parse()

	if flag.NArg() != 0 {
		log.Fatalf("%v: Unknown arguments: %v", os.Args[0], flag.Args())
	}

	mem := memory.New(size)

	if len(data) != 0 {
		img := loadImage(data)
		if verbose {
			log.Printf("%v: $sp 0x%08x, %d words", data, img.Register, len(img.Words))
		}
		err := img.LoadAt(mem, 0)
		if err != nil {
			log.Fatalf("%v: %v", data, err)
		}
	}

	if len(text) != 0 {
		img := loadImage(text)
		if verbose {
			log.Printf("%v: pc 0x%08x, %d words", text, img.Register, len(img.Words))
		}
		err := img.LoadAt(mem, img.Register)
		if err != nil {
			log.Fatalf("%v: %v", text, err)
		}
	}

	if len(run) != 0 {
		file, err := os.Open(run)
		if err != nil {
			log.Fatalf("%v: %v", run, err)
		}

		runner := &script.Runner{Mem: mem, Verbose: verbose}
		_, err = runner.Run(run, file)
		file.Close()
		if err != nil {
			log.Fatal(err)
		}
	}

	if len(write) != 0 {
		if words == 0 {
			words = mem.Size() / 4
		}
		img, err := image.DumpFrom(mem, uint32(sp), 0, words)
		if err != nil {
			log.Fatalf("%v: %v", write, err)
		}

		ouf, err := os.Create(write)
		if err != nil {
			log.Fatalf("%v: %v", write, err)
		}
		defer ouf.Close()

		err = img.Marshal(ouf)
		if err != nil {
			log.Fatalf("%v: %v", write, err)
		}
	}

	if dump {
		for offset, word := range mem.Words() {
			fmt.Printf("%08x: %08x\n", offset, word)
		}
	}
}
