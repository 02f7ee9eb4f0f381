package config

import (
	"github.com/Veraticus/kesi-ledger/internal/llm"
	"github.com/Veraticus/kesi-ledger/internal/sheets"
	"github.com/Veraticus/kesi-ledger/internal/storage"
	"github.com/spf13/viper"
)

// SetDefaults registers default values for every known key.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")

	v.SetDefault("storage.backend", storage.BackendSQLite)
	v.SetDefault("storage.path", DefaultStoragePath)

	v.SetDefault("llm.provider", llm.ProviderOpenAI)
	v.SetDefault("llm.max_retries", 1)
	v.SetDefault("llm.retry_delay", "1s")
	v.SetDefault("llm.cache_ttl", "15m")
	v.SetDefault("llm.timeout", "30s")
}

// Storage holds the persistence settings.
type Storage struct {
	Backend string
	Path    string
}

// LoadStorage reads the storage section.
func LoadStorage(v *viper.Viper) Storage {
	path := v.GetString("storage.path")
	if path == "" {
		path = DefaultStoragePath
	}
	return Storage{
		Backend: v.GetString("storage.backend"),
		Path:    ExpandPath(path),
	}
}

// LoadLLMConfig reads the llm section.
func LoadLLMConfig(v *viper.Viper) llm.Config {
	return llm.Config{
		Provider:   v.GetString("llm.provider"),
		APIKey:     v.GetString("llm.api_key"),
		Model:      v.GetString("llm.model"),
		BaseURL:    v.GetString("llm.base_url"),
		MaxRetries: v.GetInt("llm.max_retries"),
		RetryDelay: v.GetDuration("llm.retry_delay"),
		CacheTTL:   v.GetDuration("llm.cache_ttl"),
		Timeout:    v.GetDuration("llm.timeout"),
	}
}

// LoadPDFFont returns the TrueType font path for PDF reports, or "" for the
// built-in font.
func LoadPDFFont(v *viper.Viper) string {
	return ExpandPath(v.GetString("report.pdf_font"))
}

// LoadSheetsConfig reads the sheets section on top of sheets.DefaultConfig.
func LoadSheetsConfig(v *viper.Viper) sheets.Config {
	cfg := sheets.DefaultConfig()

	if s := v.GetString("sheets.service_account_path"); s != "" {
		cfg.ServiceAccountPath = ExpandPath(s)
	}
	if s := v.GetString("sheets.client_id"); s != "" {
		cfg.ClientID = s
	}
	if s := v.GetString("sheets.client_secret"); s != "" {
		cfg.ClientSecret = s
	}
	if s := v.GetString("sheets.refresh_token"); s != "" {
		cfg.RefreshToken = s
	}
	if s := v.GetString("sheets.spreadsheet_id"); s != "" {
		cfg.SpreadsheetID = s
	}
	if s := v.GetString("sheets.spreadsheet_name"); s != "" {
		cfg.SpreadsheetName = s
	}
	if s := v.GetString("sheets.timezone"); s != "" {
		cfg.TimeZone = s
	}

	return cfg
}
