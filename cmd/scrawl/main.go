// Command scrawl extracts a handwriting style from a sample image and
// renders arbitrary text in that style.
//
//	scrawl -sample note.jpg -text "hello world" -out out.png
//	scrawl -sample note.jpg -style            # dump the style descriptor
//	scrawl -text "hello" -out out.png         # default style, no sample
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/scrawlab/scrawl/internal/analysis"
	"github.com/scrawlab/scrawl/internal/config"
	"github.com/scrawlab/scrawl/internal/glyph"
	"github.com/scrawlab/scrawl/internal/imaging"
	"github.com/scrawlab/scrawl/internal/ocr"
	"github.com/scrawlab/scrawl/internal/render"
	"github.com/scrawlab/scrawl/internal/style"
	"github.com/scrawlab/scrawl/internal/synth"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime)

	var (
		samplePath  = flag.String("sample", "", "handwriting sample image (png/jpeg/gif)")
		text        = flag.String("text", "", "text to render in the extracted style")
		outPath     = flag.String("out", "out.png", "output PNG path")
		configPath  = flag.String("config", "", "YAML options file (defaults apply when empty)")
		seed        = flag.Int64("seed", 0, "RNG seed; 0 picks a time-derived seed")
		fidelity    = flag.String("fidelity", "", "estimator fidelity: basic or enhanced")
		useOCR      = flag.Bool("ocr", false, "refine character width with OCR (requires tesseract)")
		dumpStyle   = flag.Bool("style", false, "print the style descriptor as JSON and exit")
		showVersion = flag.Bool("version", false, "print version information")
	)
	flag.Parse()

	if *showVersion {
		fmt.Printf("scrawl %s\n", Version)
		fmt.Printf("  Build time: %s\n", BuildTime)
		fmt.Printf("  Git commit: %s\n", GitCommit)
		return
	}

	opts := config.Default()
	if *configPath != "" {
		var err error
		opts, err = config.Load(*configPath)
		if err != nil {
			log.Fatalf("config: %v", err)
		}
	}
	if *fidelity != "" {
		opts.Fidelity = config.Fidelity(*fidelity)
		if err := opts.Validate(); err != nil {
			log.Fatalf("config: %v", err)
		}
	}
	if *seed != 0 {
		opts.Seed = *seed
	}

	desc := style.Default()
	if *samplePath != "" {
		img, err := imaging.Load(*samplePath)
		if err != nil {
			log.Fatalf("sample: %v", err)
		}

		recognized := ""
		if *useOCR {
			rec, err := ocr.New("eng")
			if err != nil {
				log.Printf("ocr unavailable, continuing without transcript: %v", err)
			} else if recognized, err = rec.Recognize(img); err != nil {
				log.Printf("ocr failed, continuing without transcript: %v", err)
				recognized = ""
			}
		}

		desc, err = analysis.AnalyzeWithText(img, recognized, opts)
		if err != nil {
			log.Fatalf("analyze: %v", err)
		}
	}

	if *dumpStyle {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(desc); err != nil {
			log.Fatalf("style: %v", err)
		}
		return
	}

	if *text == "" {
		log.Fatal("nothing to do: provide -text to render or -style to inspect a sample")
	}

	catalog, err := glyph.NewCatalog()
	if err != nil {
		log.Fatalf("catalog: %v", err)
	}

	doc := synth.Generate(&desc, *text, catalog, opts)
	if doc.Skipped {
		log.Fatal("generate: no renderable text")
	}
	if doc.Truncated {
		log.Printf("text did not fit the canvas; output truncated")
	}

	rast := render.NewRasterizer(doc.Width, doc.Height)
	render.Render(doc, rast)
	if err := render.WritePNG(*outPath, rast.Image()); err != nil {
		log.Fatalf("write: %v", err)
	}
	log.Printf("wrote %s (%d glyphs)", *outPath, len(doc.Placements))
}
