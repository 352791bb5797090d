package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hazadus/go-rrlyrics/internal/search"
)

// openBrowser открывает ссылку в браузере; подменяется в тестах
var openBrowser = search.OpenBrowser

// createSearchCommand создает команду search с привязкой к экземпляру приложения
func (app *Application) createSearchCommand() *cobra.Command {
	var open bool

	cmd := &cobra.Command{
		Use:   "search [query]",
		Short: "Print lyrics search links",
		Long:  `Print links to search the lyrics on Genius, Uta-Net, Kashi and Google.`,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return searchLyrics(strings.Join(args, " "), open)
		},
	}
	cmd.Flags().BoolVar(&open, "open", false, "open the first link in the browser")
	return cmd
}

func searchLyrics(query string, open bool) error {
	links := search.Links(query)
	if len(links) == 0 {
		return errors.New("пустой поисковый запрос")
	}

	fmt.Printf("🔎 Поиск текста: %s\n", strings.TrimSpace(query))
	for _, link := range links {
		fmt.Printf("   %-8s %s\n", link.Name, link.URL)
	}

	if open {
		if err := openBrowser(links[0].URL); err != nil {
			return err
		}
		fmt.Printf("🌐 Открыто: %s\n", links[0].Name)
	}
	return nil
}
