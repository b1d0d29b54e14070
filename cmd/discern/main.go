// Package main provides the discern CLI.
package main

import (
	"fmt"
	"image"
	"os"

	"github.com/discern-ml/discern/data"
	"github.com/discern-ml/discern/internal/config"
	"github.com/discern-ml/discern/nn"

	_ "image/jpeg"
	_ "image/png"
)

const version = "v0.1.0-dev"

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "version":
			fmt.Printf("discern %s\n", version)
			return
		case "classify":
			path := config.DefaultPath
			if len(os.Args) > 2 {
				path = os.Args[2]
			}
			if err := classify(path); err != nil {
				fmt.Fprintf(os.Stderr, "discern: %v\n", err)
				os.Exit(1)
			}
			return
		}
	}

	fmt.Println("discern - real/fake image classification")
	fmt.Printf("Version: %s\n\n", version)
	fmt.Println("Commands:")
	fmt.Println("  classify [config]    Classify the configured test image")
	fmt.Println("  version              Show version")
}

// classify loads the configured network and test image, runs the forward
// pass, and prints the derived label with the raw output vector.
func classify(configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	net, err := nn.Load(cfg.SettingsPath)
	if err != nil {
		return err
	}

	dp, err := loadImage(cfg.TestPath)
	if err != nil {
		return err
	}

	label, outputs := net.Run(dp)
	fmt.Printf("Label: %v, Outputs: %v\n", label, outputs)
	return nil
}

func loadImage(path string) (*data.Datapoint, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open test image %s: %w", path, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode test image %s: %w", path, err)
	}
	return data.FromImage(img), nil
}
