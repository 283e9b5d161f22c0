package browser_test

import (
	"testing"

	"github.com/playwright-community/playwright-go"
)

// TestSmoke_HomePage verifies the book entry form renders with the seeded roster.
func TestSmoke_HomePage(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping browser test in short mode")
	}

	app := newTestApp(t)
	page := app.newPage(t)

	if _, err := page.Goto(app.BaseURL + "/"); err != nil {
		t.Fatalf("failed to navigate to home: %v", err)
	}

	// The member select should carry the four seeded defaults plus the placeholder.
	options := page.Locator("select[name=member_name] option")
	count, err := options.Count()
	if err != nil {
		t.Fatalf("failed to count member options: %v", err)
	}
	if count != 5 {
		t.Errorf("expected 5 member options, got %d", count)
	}

	for _, selector := range []string{"input[name=title]", "input[name=author]", "select[name=genre]"} {
		visible, err := page.Locator(selector).IsVisible()
		if err != nil || !visible {
			t.Errorf("expected %s to be visible (err=%v)", selector, err)
		}
	}
}

// TestSmoke_AddMember verifies the roster form round-trips through the flash notice.
func TestSmoke_AddMember(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping browser test in short mode")
	}

	app := newTestApp(t)
	page := app.newPage(t)

	if _, err := page.Goto(app.BaseURL + "/members"); err != nil {
		t.Fatalf("failed to navigate to members: %v", err)
	}
	if err := page.Locator("input[name=name]").Fill("정수민"); err != nil {
		t.Fatalf("failed to fill name: %v", err)
	}
	if err := page.Locator("form[action='/add_member'] button[type=submit]").Click(); err != nil {
		t.Fatalf("failed to submit: %v", err)
	}
	if err := page.WaitForURL(app.BaseURL+"/", playwright.PageWaitForURLOptions{
		Timeout: playwright.Float(10000),
	}); err != nil {
		t.Fatalf("add_member did not redirect home: %v", err)
	}

	flash := page.Locator(".flash-success")
	text, err := flash.TextContent()
	if err != nil {
		t.Fatalf("expected a success flash: %v", err)
	}
	if text == "" {
		t.Error("expected a non-empty success notice")
	}

	// A reload must not show the notice again.
	if _, err := page.Reload(); err != nil {
		t.Fatalf("failed to reload: %v", err)
	}
	remaining, err := page.Locator(".flash-success").Count()
	if err != nil {
		t.Fatalf("failed to count flashes: %v", err)
	}
	if remaining != 0 {
		t.Error("expected the flash to be cleared after one render")
	}
}

// TestSmoke_GenerateKeywords verifies the keyword button shows the static set
// when no generator credential is configured.
func TestSmoke_GenerateKeywords(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping browser test in short mode")
	}

	app := newTestApp(t)
	page := app.newPage(t)

	if _, err := page.Goto(app.BaseURL + "/"); err != nil {
		t.Fatalf("failed to navigate to home: %v", err)
	}
	if err := page.Locator("input[name=title]").Fill("그리스인 조르바"); err != nil {
		t.Fatalf("failed to fill title: %v", err)
	}
	if _, err := page.Locator("select[name=genre]").SelectOption(playwright.SelectOptionValues{
		Values: &[]string{"소설"},
	}); err != nil {
		t.Fatalf("failed to select genre: %v", err)
	}
	if err := page.Locator("#keywords-btn").Click(); err != nil {
		t.Fatalf("failed to click keyword button: %v", err)
	}

	tags := page.Locator(".keyword-tag")
	if err := tags.First().WaitFor(playwright.LocatorWaitForOptions{
		Timeout: playwright.Float(10000),
	}); err != nil {
		t.Fatalf("keyword tags did not appear: %v", err)
	}
	count, err := tags.Count()
	if err != nil {
		t.Fatalf("failed to count keyword tags: %v", err)
	}
	if count != 5 {
		t.Errorf("expected 5 keyword tags, got %d", count)
	}
}
