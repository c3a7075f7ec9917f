package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/cognicore/syllog/internal/llm"
	"github.com/cognicore/syllog/pkg/syllog"
	"github.com/cognicore/syllog/pkg/syllog/config"
	"github.com/cognicore/syllog/pkg/syllog/store"
	"github.com/cognicore/syllog/pkg/syllog/store/memstore"
	"github.com/cognicore/syllog/pkg/syllog/store/sqlite"
)

func main() {
	var (
		configPath = flag.String("config", "", "Config file (required unless --logic)")
		inputPath  = flag.String("input", "", "Natural-language KB file (default: stdin)")
		logicPath  = flag.String("logic", "", "Reason over a ready-made logic file, skipping translation")
		listRuns   = flag.Int("list", 0, "List the N most recent stored runs and exit")
		showRun    = flag.String("show", "", "Show one stored run by id and exit")
	)
	flag.Parse()

	ctx := context.Background()

	// Ready-made logic needs no config and no store.
	if *logicPath != "" {
		data, err := os.ReadFile(*logicPath)
		if err != nil {
			log.Fatal(err)
		}
		printReport(syllog.New(syllog.Options{}).Reason(string(data)))
		return
	}

	if *configPath == "" {
		log.Fatal("--config required")
	}
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal(err)
	}

	st, err := openStore(ctx, cfg)
	if err != nil {
		log.Fatal(err)
	}

	if *listRuns > 0 {
		defer st.Close()
		runs, err := st.ListRuns(ctx, *listRuns)
		if err != nil {
			log.Fatal(err)
		}
		for _, r := range runs {
			fmt.Printf("%s  %s  facts=%d rules=%d derived=%d\n",
				r.ID, r.CreatedAt.Format("2006-01-02 15:04:05"),
				len(r.Facts), len(r.Rules), len(r.Derived))
		}
		return
	}

	if *showRun != "" {
		defer st.Close()
		run, err := st.GetRun(ctx, *showRun)
		if err != nil {
			log.Fatal(err)
		}
		printRun(run)
		return
	}

	engine := syllog.New(syllog.Options{
		Translator:        newClient(cfg),
		Store:             st,
		Fixpoint:          cfg.Engine.Fixpoint,
		MaxFixpointPasses: cfg.Engine.MaxFixpointPasses,
	})
	defer engine.Close()

	nlText, err := readInput(*inputPath)
	if err != nil {
		log.Fatal(err)
	}

	report, err := engine.Run(ctx, nlText)
	if err != nil {
		log.Fatal(err)
	}
	printReport(report)
}

func newClient(cfg *config.Config) *llm.Client {
	return &llm.Client{
		BaseURL:           cfg.LLM.Endpoint,
		APIKey:            cfg.LLM.APIKey,
		Model:             cfg.LLM.Model,
		TranslatePrompt:   cfg.LLM.TranslatePrompt,
		RefineInstruction: cfg.LLM.RefinePrompt,
	}
}

func openStore(ctx context.Context, cfg *config.Config) (store.Store, error) {
	if cfg.Store.Path == "" {
		return memstore.New(), nil
	}
	return sqlite.Open(ctx, cfg.Store.Path)
}

func readInput(path string) (string, error) {
	if path != "" {
		data, err := os.ReadFile(path)
		return string(data), err
	}
	data, err := io.ReadAll(os.Stdin)
	return string(data), err
}

func printReport(r *syllog.Report) {
	if r.RunID != "" {
		fmt.Printf("Run: %s\n", r.RunID)
	}
	if r.Refined {
		fmt.Println("Logic was refined after validation issues:")
		for _, issue := range r.Issues {
			fmt.Printf("  %s\n", issue)
		}
	}

	fmt.Println("\nFacts:")
	for _, f := range r.Facts {
		fmt.Printf("  %s\n", f)
	}
	fmt.Println("\nRules:")
	for _, rule := range r.Rules {
		fmt.Printf("  %s\n", rule)
	}

	if len(r.Diagnostics) > 0 {
		fmt.Println("\nSkipped:")
		for _, d := range r.Diagnostics {
			fmt.Printf("  %s\n", d)
		}
	}

	if r.Empty() {
		fmt.Println("\nNothing to reason over.")
		return
	}

	fmt.Println("\nDerived facts:")
	if len(r.Derived) == 0 {
		fmt.Println("  (none)")
	}
	for _, f := range r.Derived {
		fmt.Printf("  %s\n", f)
	}
}

func printRun(r store.Run) {
	fmt.Printf("Run: %s (%s)\n", r.ID, r.CreatedAt.Format("2006-01-02 15:04:05"))
	fmt.Printf("\nInput:\n%s\n", r.Input)
	fmt.Printf("\nLogic:\n%s\n", r.Logic)
	if r.Refined {
		fmt.Println("\nRefined after:")
		for _, issue := range r.Issues {
			fmt.Printf("  %s\n", issue)
		}
	}
	fmt.Println("\nDerived facts:")
	for _, f := range r.Derived {
		fmt.Printf("  %s\n", f)
	}
}
