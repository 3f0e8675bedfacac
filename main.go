package main

import (
	"context"
	"fmt"
	"log"

	"vanderveg-menu/config"
	"vanderveg-menu/pkg/menu"
	"vanderveg-menu/pkg/ocr"
	"vanderveg-menu/pkg/scrape"
)

func main() {
	cfg := config.Load()

	// The OCR engine handle is built once here and passed down explicitly.
	engine := ocr.NewTesseract(cfg.OCRLanguage)

	if err := run(cfg, engine); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

// run executes the single-shot pipeline: homepage -> newest menu image ->
// OCR -> cleaned menu on stdout.
func run(cfg *config.Config, engine ocr.Engine) error {
	client := scrape.NewClient()

	page, err := scrape.FetchPage(client, cfg.HomepageURL)
	if err != nil {
		return err
	}

	imageURL, err := scrape.LocateMenuImage(page, cfg.HomepageURL)
	if err != nil {
		return err
	}
	log.Printf("Menu image URL: %s", imageURL)

	image, err := scrape.FetchImage(client, imageURL)
	if err != nil {
		return err
	}

	lines, err := engine.Recognize(context.Background(), image)
	if err != nil {
		return fmt.Errorf("ocr: %w", err)
	}

	cleaned := menu.Clean(lines, cfg.MinConfidence)
	if cleaned == "" {
		// OCR ran but nothing readable survived filtering; not a failure.
		fmt.Println("no menu text recognized")
		return nil
	}

	week := menu.Parse(cleaned)
	if len(week) == 0 {
		// No day headers survived OCR; the cleaned lines are still the menu.
		fmt.Println(cleaned)
		return nil
	}

	soupPrice, mainPrice := scrape.ExtractPrices(page)
	fmt.Println(menu.Format(week, soupPrice, mainPrice))
	return nil
}
