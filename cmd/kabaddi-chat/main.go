package main

import (
	"flag"
	"log"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"

	"kabaddibot/internal/config"
	"kabaddibot/internal/dataset"
	"kabaddibot/internal/embedding/tfidf"
	"kabaddibot/internal/index"
	"kabaddibot/internal/matcher"
	"kabaddibot/internal/tui"
)

func main() {
	_ = godotenv.Load()

	var cfgPath, dataPath string
	flag.StringVar(&cfgPath, "config", "", "Path to YAML config file (optional; uses ~/.config/kabaddi-chat/config.yaml if not provided)")
	flag.StringVar(&dataPath, "dataset", "", "Path to the question/answer dataset (.csv or .yaml); overrides config")
	flag.Parse()
	cfgPath = config.ResolvePath(cfgPath, config.EnvConfigPath)
	dataPath = config.ResolvePath(dataPath, config.EnvDatasetPath)

	var cfg *config.AppConfig
	var err error
	if cfgPath == "" {
		cfg, _, err = config.LoadDefault()
	} else {
		cfg, err = config.Load(cfgPath)
	}
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	if dataPath == "" {
		dataPath = cfg.Dataset.Path
	}

	// Assemble components
	var ds *dataset.Dataset
	if dataPath == "" {
		ds = dataset.LoadDefault()
	} else {
		ds, err = dataset.Load(dataPath)
		if err != nil {
			log.Fatalf("failed to load dataset: %v", err)
		}
	}

	var emb *tfidf.Embedder
	switch cfg.Embedder.Stopwords {
	case "english", "":
		emb = tfidf.NewEmbedder()
	case "none":
		emb = tfidf.NewEmbedderWithStopwords(nil)
	default:
		log.Fatalf("unknown stopwords set: %s", cfg.Embedder.Stopwords)
	}

	svc, err := matcher.New(ds, emb, index.NewMemory(), matcher.WithMinScore(cfg.Matcher.MinScore))
	if err != nil {
		log.Fatalf("failed to build matcher: %v", err)
	}

	m := tui.New(svc, cfg.Matcher.Fallback, cfg.Matcher.TopK, ds.Len())
	if _, err := tea.NewProgram(m).Run(); err != nil {
		log.Fatal(err)
	}
}
