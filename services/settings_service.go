package services

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/MonkyMars/gecho"
	"github.com/avira1987/remix-of-dxb-dubi/database"
	"github.com/avira1987/remix-of-dxb-dubi/lib"
	"github.com/avira1987/remix-of-dxb-dubi/structs/tables"
)

// Settings keys recognized by the storefront and back-office
const (
	SettingSiteName        = "site_name"
	SettingSiteLogo        = "site_logo"
	SettingSiteDescription = "site_description"
	SettingInstagramURL    = "instagram_url"
	SettingFacebookURL     = "facebook_url"
	SettingTwitterURL      = "twitter_url"
	SettingYoutubeURL      = "youtube_url"
	SettingLinkedinURL     = "linkedin_url"
	SettingTiktokURL       = "tiktok_url"
	SettingWhatsappNumber  = "whatsapp_number"
	SettingTelegramURL     = "telegram_url"
)

type SettingsService struct {
	logger       *gecho.Logger
	db           *database.DB
	cacheService *CacheService
}

func NewSettingsService(logger *gecho.Logger, db *database.DB, cacheService *CacheService) *SettingsService {
	return &SettingsService{
		logger:       logger,
		db:           db,
		cacheService: cacheService,
	}
}

// GetAllSettings returns every settings row, cache-aside
func (ss *SettingsService) GetAllSettings(ctx context.Context) ([]tables.SiteSetting, error) {
	cached, err := ss.cacheService.GetSiteSettings()
	if err != nil {
		ss.logger.Warn("Failed to get settings from cache", gecho.Field("error", err))
	} else if cached != nil {
		return cached, nil
	}

	settings, err := database.Query[tables.SiteSetting](ss.db).
		OrderBy("category", database.ASC).
		OrderBy("key", database.ASC).
		Timeout(5 * time.Second).
		All(ctx)
	if err != nil {
		ss.logger.Error("Failed to fetch site settings", gecho.Field("error", err))
		return nil, fmt.Errorf("failed to fetch site settings: %w", err)
	}

	go func() {
		if err := ss.cacheService.SetSiteSettings(settings); err != nil {
			ss.logger.Warn("Failed to cache site settings", gecho.Field("error", err))
		}
	}()

	return settings, nil
}

// GetSettingsMap returns settings as a key->value map for the storefront
func (ss *SettingsService) GetSettingsMap(ctx context.Context) (map[string]string, error) {
	settings, err := ss.GetAllSettings(ctx)
	if err != nil {
		return nil, err
	}

	values := make(map[string]string, len(settings))
	for _, setting := range settings {
		values[setting.Key] = setting.Value
	}

	return values, nil
}

// UpdateSetting changes the value of a pre-seeded key and returns the updated
// row. Unknown keys are rejected; the key set itself is fixed at seed time.
func (ss *SettingsService) UpdateSetting(ctx context.Context, key, value string) (*tables.SiteSetting, error) {
	updated, err := database.Query[tables.SiteSetting](ss.db).
		Where("key", key).
		UpdateReturning(ctx, map[string]any{
			"value":      value,
			"updated_at": time.Now(),
		})
	if err != nil {
		return nil, fmt.Errorf("failed to update setting: %w", lib.MapPgError(err))
	}
	if len(updated) == 0 {
		return nil, lib.ErrNotFound
	}

	if err := ss.cacheService.InvalidateSettingsCache(); err != nil {
		ss.logger.Warn("Failed to invalidate settings cache", gecho.Field("error", err))
	}

	return &updated[0], nil
}

// ContactLinks are the out-of-band ordering channels rendered on the product
// detail page
type ContactLinks struct {
	WhatsAppURL  string `json:"whatsapp_url,omitempty"`
	InstagramURL string `json:"instagram_url,omitempty"`
}

// GetContactLinks builds ordering links for a product. The WhatsApp link
// pre-fills an inquiry message; a missing number simply omits the link.
func (ss *SettingsService) GetContactLinks(ctx context.Context, productName string) (*ContactLinks, error) {
	values, err := ss.GetSettingsMap(ctx)
	if err != nil {
		return nil, err
	}

	links := &ContactLinks{
		InstagramURL: values[SettingInstagramURL],
	}

	if number := digitsOnly(values[SettingWhatsappNumber]); number != "" {
		message := fmt.Sprintf("Hello, I am interested in %s", productName)
		links.WhatsAppURL = fmt.Sprintf("https://wa.me/%s?text=%s", number, url.QueryEscape(message))
	}

	return links, nil
}

// digitsOnly strips formatting from a phone number for wa.me links
func digitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
