package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"

	"pulse/api"
	"pulse/common"
	"pulse/config"
	"pulse/gemini"
	"pulse/kafka"
	"pulse/media"
	"pulse/rssfeeds"
	"pulse/session"
	"pulse/tui"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		log.Fatal("GEMINI_API_KEY environment variable is required")
	}

	ctx := context.Background()

	store, err := media.NewStore(config.MediaDir)
	if err != nil {
		log.Fatalf("Failed to initialize media store: %v", err)
	}

	engine, err := gemini.NewEngine(ctx, gemini.Config{APIKey: apiKey}, store)
	if err != nil {
		log.Fatalf("Failed to initialize AI engine: %v", err)
	}

	cfg := session.Config{
		Engine:     engine,
		Sweeper:    engine,
		Supplement: rssfeeds.NewSource(config.MaxSupplementItems, true),
	}

	// Optional Kafka story publishing
	if brokers := os.Getenv("KAFKA_BROKERS"); brokers != "" {
		topic := os.Getenv("KAFKA_TOPIC")
		if topic == "" {
			topic = "pulse-stories"
		}
		producer, err := kafka.NewProducer(kafka.ProducerConfig{
			Brokers: strings.Split(brokers, ","),
			Topic:   topic,
		})
		if err != nil {
			log.Printf("⚠️ Kafka disabled: %v", err)
		} else {
			defer producer.Close()
			cfg.Publisher = producer
		}
	}

	// Optional S3 asset archival
	if bucket := os.Getenv("S3_BUCKET"); bucket != "" {
		s3c, err := common.NewS3(ctx, common.S3Config{
			Region:  os.Getenv("S3_REGION"),
			Profile: os.Getenv("S3_PROFILE"),
		})
		if err != nil {
			log.Printf("⚠️ S3 archival disabled: %v", err)
		} else {
			cfg.Archiver = common.NewAssetArchive(s3c, bucket, os.Getenv("S3_PREFIX"))
		}
	}

	s := session.New(cfg)
	s.Start(ctx)
	defer s.Stop()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	router := api.NewRouter(s)
	go func() {
		log.Printf("🚀 API server starting on port %s", port)
		if err := http.ListenAndServe(":"+port, router); err != nil {
			log.Printf("API server stopped: %v", err)
		}
	}()

	p := tea.NewProgram(tui.NewModel(s), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		log.Fatalf("TUI error: %v", err)
	}
}
