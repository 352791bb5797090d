// Package search строит ссылки на поиск текста песни на внешних сайтах
package search

import (
	"fmt"
	"net/url"
	"os/exec"
	"runtime"
	"strings"
)

// Link ссылка на поиск текста на одном сайте
type Link struct {
	Name string
	Icon string
	URL  string
}

type site struct {
	name  string
	icon  string
	build func(q string) string
}

var sites = []site{
	{
		name: "Genius",
		icon: "G",
		build: func(q string) string {
			return "https://genius.com/search?q=" + escape(q)
		},
	},
	{
		name: "Uta-Net",
		icon: "U",
		build: func(q string) string {
			return fmt.Sprintf("https://www.uta-net.com/search/?Keyword=%s&Aession=ON&TitleSession=ON&Title=%s", escape(q), escape(q))
		},
	},
	{
		name: "Kashi",
		icon: "K",
		build: func(q string) string {
			return "https://www.kget.jp/search/index.php?c=0&t=&r=&v=" + escape(q)
		},
	},
	{
		name: "Google",
		icon: "G",
		build: func(q string) string {
			return "https://www.google.com/search?q=" + escape(q+" lyrics")
		},
	},
}

// Links возвращает ссылки на поиск текста. Для пустого запроса ссылок нет.
func Links(query string) []Link {
	if strings.TrimSpace(query) == "" {
		return nil
	}
	links := make([]Link, len(sites))
	for i, s := range sites {
		links[i] = Link{Name: s.name, Icon: s.icon, URL: s.build(query)}
	}
	return links
}

// escape кодирует запрос так же, как encodeURIComponent: пробел становится %20
func escape(q string) string {
	return strings.ReplaceAll(url.QueryEscape(q), "+", "%20")
}

// OpenBrowser открывает ссылку в браузере по умолчанию
func OpenBrowser(link string) error {
	var cmd *exec.Cmd

	switch runtime.GOOS {
	case "linux":
		cmd = exec.Command("xdg-open", link)
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", link)
	case "darwin":
		cmd = exec.Command("open", link)
	default:
		return fmt.Errorf("не удалось открыть браузер на %s, откройте ссылку вручную: %s", runtime.GOOS, link)
	}

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("не удалось открыть браузер, откройте ссылку вручную: %s: %w", link, err)
	}
	return nil
}
