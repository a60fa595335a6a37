package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/thedittmer/research-agent/internal/config"
	"github.com/thedittmer/research-agent/internal/content"
	"github.com/thedittmer/research-agent/internal/llm"
	"github.com/thedittmer/research-agent/internal/models"
	"github.com/thedittmer/research-agent/internal/news"
	"github.com/thedittmer/research-agent/internal/pipeline"
	"github.com/thedittmer/research-agent/internal/search"
	"github.com/thedittmer/research-agent/internal/storage"
	"github.com/thedittmer/research-agent/internal/ui"
)

// app bundles everything the menu actions need.
type app struct {
	cfg      *config.Config
	client   *llm.Client
	session  *models.Session
	store    *storage.Storage
	renderer *ui.Renderer
	reader   *bufio.Reader
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println(ui.ErrorStyle.Render(fmt.Sprintf("Configuration error: %v", err)))
		fmt.Println(ui.DimStyle.Render("Please check your .env file."))
		os.Exit(1)
	}

	store, err := storage.NewStorage()
	if err != nil {
		fmt.Println(ui.ErrorStyle.Render(fmt.Sprintf("Storage error: %v", err)))
		os.Exit(1)
	}

	a := &app{
		cfg:      cfg,
		client:   llm.NewClient(cfg.GroqAPIKey, cfg.Model),
		session:  models.NewSession(cfg.SearchProvider, cfg.Model, cfg.NewsSource),
		store:    store,
		renderer: ui.NewRenderer(),
		reader:   bufio.NewReader(os.Stdin),
	}

	fmt.Println(ui.Banner())
	a.menu()
}

func (a *app) menu() {
	for {
		fmt.Print("\nOptions:\n")
		fmt.Print("1. Start research\n")
		fmt.Print("2. Chat with the agent\n")
		fmt.Print("3. Settings\n")
		fmt.Print("4. Export last report\n")
		fmt.Print("5. Exit\n")
		fmt.Print("\nEnter choice (1-5): ")

		choice, err := a.reader.ReadString('\n')
		if err != nil {
			return
		}
		choice = strings.TrimSpace(choice)

		switch choice {
		case "1":
			a.runResearch()
		case "2":
			a.runChat()
		case "3":
			a.runSettings()
		case "4":
			a.runExport()
		case "5":
			return
		default:
			fmt.Println("Invalid choice")
		}
	}
}

func (a *app) runResearch() {
	if recent, err := a.store.LoadKeywords(); err == nil && len(recent) > 0 {
		fmt.Println(ui.DimStyle.Render("Recent keywords: " + strings.Join(recent, ", ")))
	}

	fmt.Println("\nEnter keywords (one per line, blank line to finish):")
	keywords := models.ParseKeywords(a.readMultiline())
	if len(keywords) == 0 {
		fmt.Println(ui.ErrorStyle.Render("Please enter at least one keyword"))
		return
	}

	maxResults := a.readMaxResults()

	p := a.buildPipeline()
	p.OnStatus(func(msg string) {
		fmt.Println(ui.StatusStyle.Render(msg))
	})

	report, err := p.Run(context.Background(), a.session, keywords, maxResults)
	if err != nil {
		fmt.Println(ui.ErrorStyle.Render(fmt.Sprintf("Research failed: %v", err)))
		return
	}

	if err := a.store.SaveKeywords(keywords); err != nil {
		fmt.Println(ui.DimStyle.Render(fmt.Sprintf("Could not save keywords: %v", err)))
	}

	fmt.Println()
	fmt.Print(a.renderer.RenderReport(report))

	a.editPosts(report)
}

// buildPipeline assembles the research flow from the session's current
// provider and news source settings.
func (a *app) buildPipeline() *pipeline.Pipeline {
	a.client.SetModel(a.session.Model)

	var provider search.Provider
	if a.session.SearchProvider == "serper" && a.cfg.SerperAPIKey != "" {
		provider = search.NewSerper(a.cfg.SerperAPIKey)
	} else {
		provider = search.NewDuckDuckGo()
	}

	var source news.Source
	if a.session.NewsSource == "googlenews" {
		source = news.NewGoogleNews(a.cfg.NewsPageSize)
	} else {
		source = news.NewClient(a.cfg.NewsAPIKey, a.cfg.NewsLanguage, a.cfg.NewsPageSize)
	}

	agent := search.NewAgent(a.client, provider)
	generator := content.NewGenerator(a.client)
	aggregator := news.NewAggregator(source)

	fmt.Println(ui.DimStyle.Render(fmt.Sprintf("Using %s search and %s news", agent.ProviderName(), aggregator.SourceName())))

	return pipeline.New(agent, generator, aggregator)
}

// readMultiline reads lines until a blank line or EOF.
func (a *app) readMultiline() string {
	var lines []string
	for {
		line, err := a.reader.ReadString('\n')
		line = strings.TrimRight(line, "\r\n")
		if line == "" {
			break
		}
		lines = append(lines, line)
		if err != nil {
			break
		}
	}
	return strings.Join(lines, "\n")
}

func (a *app) readMaxResults() int {
	fmt.Printf("Maximum results per keyword (%d-%d, default %d): ",
		config.MinResults, config.MaxResults, a.cfg.DefaultMaxResults)

	input, _ := a.reader.ReadString('\n')
	input = strings.TrimSpace(input)
	if input == "" {
		return a.cfg.DefaultMaxResults
	}

	n, err := strconv.Atoi(input)
	if err != nil {
		fmt.Println(ui.DimStyle.Render(fmt.Sprintf("Not a number, using %d", a.cfg.DefaultMaxResults)))
		return a.cfg.DefaultMaxResults
	}
	return config.ClampResults(n)
}

// editPosts lets the user rewrite generated posts before exporting.
func (a *app) editPosts(report *models.ResearchReport) {
	fmt.Print("\nEdit a post before exporting? (y/n): ")
	response, _ := a.reader.ReadString('\n')
	if strings.ToLower(strings.TrimSpace(response)) != "y" {
		return
	}

	for {
		fmt.Print("Platform (linkedin/instagram/facebook, blank to stop): ")
		platformInput, _ := a.reader.ReadString('\n')
		platformInput = strings.ToLower(strings.TrimSpace(platformInput))
		if platformInput == "" {
			return
		}

		posts := report.Posts[models.Platform(platformInput)]
		if len(posts) == 0 {
			fmt.Println(ui.ErrorStyle.Render("No posts for that platform"))
			continue
		}

		fmt.Printf("Post number (1-%d): ", len(posts))
		numInput, _ := a.reader.ReadString('\n')
		num, err := strconv.Atoi(strings.TrimSpace(numInput))
		if err != nil || num < 1 || num > len(posts) {
			fmt.Println(ui.ErrorStyle.Render("Invalid post number"))
			continue
		}

		fmt.Println("Enter the new post body (blank line to finish):")
		body := a.readMultiline()
		if body == "" {
			fmt.Println(ui.DimStyle.Render("Post unchanged"))
			continue
		}

		posts[num-1].Body = body
		fmt.Println(ui.SuccessStyle.Render(fmt.Sprintf("Post %d updated successfully!", num)))
	}
}

func (a *app) runChat() {
	fmt.Println(ui.DimStyle.Render("Chat with the research agent. Type 'exit' to return to the menu."))

	for {
		fmt.Print("\n> ")
		input, err := a.reader.ReadString('\n')
		if err != nil {
			return
		}
		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}
		if input == "exit" {
			return
		}

		a.session.Append(models.RoleUser, input)

		messages := make([]llm.Message, 0, len(a.session.History))
		for _, msg := range a.session.History {
			messages = append(messages, llm.Message{Role: msg.Role, Content: msg.Content})
		}

		reply, err := a.client.Chat(context.Background(), messages)
		if err != nil {
			fmt.Println(ui.ErrorStyle.Render(fmt.Sprintf("Chat failed: %v", err)))
			continue
		}

		a.session.Append(models.RoleAssistant, reply)
		fmt.Println(a.renderer.RenderChatMessage(models.ChatMessage{
			Role:    models.RoleAssistant,
			Content: reply,
		}))
	}
}

func (a *app) runSettings() {
	for {
		fmt.Print("\nSettings:\n")
		fmt.Printf("1. Search provider (%s)\n", a.session.SearchProvider)
		fmt.Printf("2. Model (%s)\n", a.session.Model)
		fmt.Printf("3. News source (%s)\n", a.session.NewsSource)
		fmt.Print("4. Back\n")
		fmt.Print("\nEnter choice (1-4): ")

		choice, err := a.reader.ReadString('\n')
		if err != nil {
			return
		}

		switch strings.TrimSpace(choice) {
		case "1":
			fmt.Print("Search provider (duckduckgo/serper): ")
			input, _ := a.reader.ReadString('\n')
			input = strings.ToLower(strings.TrimSpace(input))
			switch input {
			case "duckduckgo":
				a.session.SearchProvider = input
			case "serper":
				if a.cfg.SerperAPIKey == "" {
					fmt.Println(ui.ErrorStyle.Render("SERPER_API_KEY is not set"))
					continue
				}
				a.session.SearchProvider = input
			default:
				fmt.Println("Invalid choice")
			}
		case "2":
			fmt.Print("Model name: ")
			input, _ := a.reader.ReadString('\n')
			input = strings.TrimSpace(input)
			if input != "" {
				a.session.Model = input
				a.client.SetModel(input)
			}
		case "3":
			fmt.Print("News source (newsapi/googlenews): ")
			input, _ := a.reader.ReadString('\n')
			input = strings.ToLower(strings.TrimSpace(input))
			if input == "newsapi" || input == "googlenews" {
				a.session.NewsSource = input
			} else {
				fmt.Println("Invalid choice")
			}
		case "4":
			return
		default:
			fmt.Println("Invalid choice")
		}
	}
}

func (a *app) runExport() {
	report := a.session.LatestReport()
	if report == nil {
		fmt.Println(ui.ErrorStyle.Render("No research to export yet"))
		return
	}

	fmt.Print("\nExport to:\n")
	fmt.Print("1. JSON file\n")
	fmt.Print("2. Google Sheets\n")
	fmt.Print("\nEnter choice (1-2): ")

	choice, _ := a.reader.ReadString('\n')

	switch strings.TrimSpace(choice) {
	case "1":
		path, err := a.store.SaveReport(report)
		if err != nil {
			fmt.Println(ui.ErrorStyle.Render(fmt.Sprintf("Export failed: %v", err)))
			return
		}
		fmt.Println(ui.SuccessStyle.Render("Report saved to " + path))
	case "2":
		// First export creates a new spreadsheet; later ones reuse it.
		spreadsheetID, err := a.store.LoadSpreadsheetID()
		if err != nil {
			spreadsheetID = ""
		}

		result := a.store.ExportToSheets(report, spreadsheetID)
		if result.Error != nil {
			fmt.Println(ui.ErrorStyle.Render(fmt.Sprintf("Export failed: %v", result.Error)))
			return
		}
		fmt.Println(ui.SuccessStyle.Render("Exported to " + result.URL))
	default:
		fmt.Println("Invalid choice")
	}
}
