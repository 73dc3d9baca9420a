package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/joho/godotenv"

	"kabaddibot/internal/config"
	"kabaddibot/internal/dataset"
	"kabaddibot/internal/embedding/tfidf"
	"kabaddibot/internal/index"
	"kabaddibot/internal/matcher"
)

func main() {
	_ = godotenv.Load()

	var cfgPath, dataPath string
	showScore := flag.Bool("score", false, "Print the similarity score alongside each answer")
	flag.StringVar(&cfgPath, "config", "", "Path to YAML config file (optional)")
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

	boldGreen := color.New(color.FgGreen, color.Bold).SprintFunc()
	boldCyan := color.New(color.FgCyan, color.Bold).SprintFunc()
	fmt.Println(boldGreen("Kabaddi Chatbot Activated"))
	fmt.Printf("Loaded %d questions. Type 'exit' to quit.\n\n", ds.Len())

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print(boldGreen("You: "))
		if !scanner.Scan() {
			break
		}
		query := strings.TrimSpace(scanner.Text())
		if query == "" {
			continue
		}
		if q := strings.ToLower(query); q == "exit" || q == "quit" {
			break
		}

		res, err := svc.Match(query)
		switch {
		case errors.Is(err, matcher.ErrNoMatch):
			fmt.Println(boldCyan("Bot: ") + cfg.Matcher.Fallback)
		case err != nil:
			log.Fatalf("match failed: %v", err)
		case *showScore:
			fmt.Printf("%s%s (score %.3f)\n", boldCyan("Bot: "), res.Answer, res.Score)
		default:
			fmt.Println(boldCyan("Bot: ") + res.Answer)
		}
	}
	if err := scanner.Err(); err != nil {
		log.Fatalf("read input: %v", err)
	}
	fmt.Println("Match finished")
}
