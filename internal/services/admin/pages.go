package admin

import (
	"context"
	"io"

	"github.com/a-h/templ"
	"github.com/buryatvpn/adminpanel/internal/platform/branding"
	"github.com/buryatvpn/adminpanel/internal/services/admin/hashroute"
	"github.com/buryatvpn/adminpanel/internal/services/admin/routepath"
	"github.com/buryatvpn/adminpanel/internal/services/admin/templates"
)

const pageLang = "ru"

var viewTitles = hashroute.Targets[string]{
	Dashboard:  "Панель управления",
	Promocodes: "Промокоды",
	Settings:   "Настройки",
	Users:      "Пользователи",
}

func viewTitle(view hashroute.View) string {
	return hashroute.Resolve(view, viewTitles)
}

// pageTitle is the document title for view, matching the full layout.
func pageTitle(view hashroute.View) string {
	return templates.ComposePageTitle(viewTitle(view), branding.AppName)
}

// pageContext builds the shell context with view marked active.
func pageContext(view hashroute.View) templates.PageContext {
	nav := make([]templates.NavItem, 0, len(hashroute.All()))
	for _, v := range hashroute.All() {
		nav = append(nav, templates.NavItem{
			Name:   v.String(),
			Label:  viewTitle(v),
			Active: v == view,
		})
	}
	return templates.PageContext{
		Lang:        pageLang,
		AppName:     branding.AppName,
		Heading:     branding.ConsoleHeading,
		CurrentView: view.String(),
		ViewsPath:   routepath.ViewsPrefix,
		AvatarURL:   branding.DefaultAvatarURL,
		Nav:         nav,
	}
}

// viewContent returns the main-area component for view.
func viewContent(view hashroute.View) templ.Component {
	targets := hashroute.Targets[func() templ.Component]{
		Dashboard:  func() templ.Component { return templates.DashboardPage(dashboardView()) },
		Promocodes: func() templ.Component { return templates.PromocodesPage(promocodesView()) },
		Settings:   func() templ.Component { return templates.SettingsPage(settingsView()) },
		Users:      func() templ.Component { return templates.UsersPage(usersView()) },
	}
	return hashroute.Resolve(view, targets)()
}

// shellPage renders the full console document with view in the main area.
func shellPage(view hashroute.View) templ.Component {
	layout := templates.Layout(viewTitle(view), pageContext(view))
	content := viewContent(view)
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return layout.Render(templ.WithChildren(ctx, content), w)
	})
}

func dashboardView() templates.DashboardView {
	return templates.DashboardView{
		Stats: templates.DashboardStats{
			TotalUsers:   templates.FormatCount(1234),
			PopularPlan:  "Премиум",
			TotalRevenue: templates.FormatRubles(123456),
		},
		Payments: []templates.PaymentRow{
			{
				TransactionID: "#123456",
				User:          "Иван Иванов",
				Amount:        templates.FormatRubles(1999),
				Date:          "2024-03-14",
				Status:        "Выполнен",
			},
		},
	}
}

func promocodesView() templates.PromocodesView {
	return templates.PromocodesView{
		Rows: []templates.PromocodeRow{
			{
				ID:       "#1",
				Code:     "WELCOME2024",
				Discount: templates.FormatPercent(20),
				Limit:    templates.FormatCount(100),
				Used:     templates.FormatCount(45),
				StartsAt: "01.03.2024",
				EndsAt:   "31.03.2024",
			},
		},
	}
}

func usersView() templates.UsersView {
	return templates.UsersView{
		Rows: []templates.UserRow{
			{
				ID:           "#1",
				Name:         "Иван Иванов",
				Email:        "ivan@example.com",
				RegisteredAt: "01.03.2024",
				Plan:         "Премиум",
				Status:       "Активный",
				LastLogin:    "14.03.2024",
			},
		},
		Detail: templates.UserDetail{
			Name:  "Иван Иванов",
			Email: "ivan@example.com",
			Payments: []templates.UserPayment{
				{Date: "14.03.2024", Amount: templates.FormatRubles(1999), Status: "Оплачен"},
			},
			Plan:      "Премиум",
			ExpiresAt: "14.04.2024",
		},
	}
}

func settingsView() templates.SettingsView {
	return templates.SettingsView{
		Sections: []templates.SettingsSection{
			{
				Title: "Настройки YooKassa",
				Fields: []templates.SettingsField{
					{Name: "yookassa-api-key", Label: "API Ключ", Type: "password"},
					{Name: "yookassa-shop-id", Label: "ID магазина", Type: "text"},
					{Name: "yookassa-test-mode", Label: "Тестовый режим", Type: "checkbox"},
				},
			},
			{
				Title: "Настройки Telegram бота",
				Fields: []templates.SettingsField{
					{Name: "telegram-bot-token", Label: "Токен бота", Type: "password"},
					{Name: "telegram-bot-name", Label: "Имя бота", Type: "text"},
					{Name: "telegram-webhook-url", Label: "Webhook URL", Type: "text"},
				},
			},
		},
	}
}
