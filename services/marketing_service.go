package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/yeremiapane/frozen-po-app/models"
	"github.com/yeremiapane/frozen-po-app/utils"
)

// Teks fallback untuk user; generator tidak pernah mengembalikan error.
const (
	FallbackNoActiveMenu = "Tidak ada menu aktif. Silakan aktifkan menu terlebih dahulu untuk membuat promosi."
	FallbackEmptyResult  = "Gagal membuat konten marketing."
	FallbackServiceError = "Terjadi kesalahan saat menghubungi asisten AI. Pastikan koneksi internet lancar."
)

// MarketingConfig holds Gemini API configuration
type MarketingConfig struct {
	APIKey  string
	Model   string
	BaseURL string
}

// MarketingService handles Gemini API interactions
type MarketingService struct {
	config     *MarketingConfig
	httpClient *http.Client
}

var (
	marketingService *MarketingService
	marketingOnce    sync.Once
)

// GetMarketingService returns singleton instance of MarketingService
func GetMarketingService() *MarketingService {
	marketingOnce.Do(func() {
		apiKey := os.Getenv("GEMINI_API_KEY")
		model := os.Getenv("GEMINI_MODEL")
		baseURL := os.Getenv("GEMINI_BASE_URL")

		if apiKey == "" {
			fmt.Println("WARNING: GEMINI_API_KEY is empty, marketing generation will fail")
		}
		if model == "" {
			model = "gemini-3-flash-preview"
		}
		if baseURL == "" {
			baseURL = "https://generativelanguage.googleapis.com"
		}

		marketingService = NewMarketingService(&MarketingConfig{
			APIKey:  apiKey,
			Model:   model,
			BaseURL: baseURL,
		})
	})
	return marketingService
}

func NewMarketingService(config *MarketingConfig) *MarketingService {
	return &MarketingService{
		config: config,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// Bentuk request/response generateContent seperlunya saja.
type geminiPart struct {
	Text string `json:"text"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiRequest struct {
	Contents []geminiContent `json:"contents"`
}

type geminiResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
}

// GenerateCopy membuat caption broadcast WhatsApp dari menu yang aktif.
// Hasilnya selalu teks yang bisa langsung ditampilkan; kegagalan apapun
// jatuh ke salah satu teks fallback.
func (ms *MarketingService) GenerateCopy(menu []models.MenuItem) string {
	var active []models.MenuItem
	for _, m := range menu {
		if m.IsActive {
			active = append(active, m)
		}
	}
	if len(active) == 0 {
		return FallbackNoActiveMenu
	}

	var menuList strings.Builder
	for _, m := range active {
		fmt.Fprintf(&menuList, "- %s (Stok: %d, Rp %s)\n", m.Name, m.Stock, utils.FormatCurrencyIDR(m.Price))
	}

	prompt := fmt.Sprintf(`Saya menjual frozen food secara pre-order (PO).
Tolong buatkan caption broadcast WhatsApp yang menarik, ramah, dan menggugah selera untuk customer saya.
Gunakan emoji yang sesuai.

Berikut adalah menu yang tersedia saat ini:
%s
Format pesan:
1. Judul menarik (contoh: "PO Frozen Food Dibuka! 📢")
2. Kata pengantar singkat yang ramah.
3. Daftar menu beserta harga.
4. Call to Action (ajakan membeli).
5. Penutup.

Buat dalam Bahasa Indonesia yang santai tapi sopan.`, menuList.String())

	body, err := json.Marshal(geminiRequest{
		Contents: []geminiContent{{Parts: []geminiPart{{Text: prompt}}}},
	})
	if err != nil {
		utils.ErrorLogger.Printf("Error marshaling Gemini request: %v", err)
		return FallbackServiceError
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s",
		ms.config.BaseURL, ms.config.Model, ms.config.APIKey)

	resp, err := ms.httpClient.Post(url, "application/json", bytes.NewBuffer(body))
	if err != nil {
		utils.ErrorLogger.Printf("Error calling Gemini API: %v", err)
		return FallbackServiceError
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		utils.ErrorLogger.Printf("Error reading Gemini response: %v", err)
		return FallbackServiceError
	}
	if resp.StatusCode != http.StatusOK {
		utils.ErrorLogger.Printf("Gemini API returned status %d: %s", resp.StatusCode, string(raw))
		return FallbackServiceError
	}

	var parsed geminiResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		utils.ErrorLogger.Printf("Error parsing Gemini response: %v", err)
		return FallbackServiceError
	}

	if len(parsed.Candidates) == 0 || len(parsed.Candidates[0].Content.Parts) == 0 {
		return FallbackEmptyResult
	}
	text := parsed.Candidates[0].Content.Parts[0].Text
	if strings.TrimSpace(text) == "" {
		return FallbackEmptyResult
	}
	return text
}
