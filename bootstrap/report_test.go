package bootstrap

import (
	"net/http"
	"strings"
	"testing"

	"github.com/ronin-framework/ronin/router"
)

func TestFormatRouteTableAlignment(t *testing.T) {
	routes := []router.Route{
		{Method: http.MethodGet, URI: "/users", ControllerName: "UserController", ControllerMethod: "list"},
		{Method: http.MethodPost, URI: "/users/{id}/avatar", ControllerName: "UserController", ControllerMethod: "uploadAvatar"},
		{Method: http.MethodDelete, URI: "/users/{id}"},
	}

	lines := formatRouteTable(routes)
	if len(lines) != 3+len(routes)+1 {
		t.Fatalf("got %d lines, want %d", len(lines), 3+len(routes)+1)
	}
	if lines[0] != lines[2] || lines[0] != lines[len(lines)-1] {
		t.Error("top, header and bottom borders must be identical")
	}
	if lines[1] != "Registered routes" {
		t.Errorf("got title %q", lines[1])
	}
	if strings.Trim(lines[0], "-") != "" {
		t.Errorf("border %q must consist of dashes", lines[0])
	}
	for _, row := range lines[3 : len(lines)-1] {
		if len(row) > len(lines[0]) {
			t.Errorf("row %q longer than border", row)
		}
	}

	if !strings.Contains(lines[3], "=>  UserController.list()") {
		t.Errorf("controller row malformed: %q", lines[3])
	}
	// Rows with controllers align their "=>" markers.
	if strings.Index(lines[3], "=>") != strings.Index(lines[4], "=>") {
		t.Errorf("misaligned controller columns:\n%q\n%q", lines[3], lines[4])
	}
	if strings.Contains(lines[5], "=>") {
		t.Errorf("controller-less row must not carry =>: %q", lines[5])
	}
}

func TestFormatRouteTableEmpty(t *testing.T) {
	lines := formatRouteTable(nil)
	if len(lines) != 4 {
		t.Fatalf("got %d lines, want 4", len(lines))
	}
	if lines[1] != "Registered routes" {
		t.Errorf("got title %q", lines[1])
	}
}

func TestFormatEngineTable(t *testing.T) {
	rows := [][2]string{
		{"application/json", "JSONTemplateEngine"},
		{"text/html", "HTMLTemplateEngine"},
	}

	lines := formatEngineTable("Registered template engines", rows)
	if len(lines) != 3+len(rows)+1 {
		t.Fatalf("got %d lines, want %d", len(lines), 3+len(rows)+1)
	}
	if lines[0] != lines[2] || lines[0] != lines[len(lines)-1] {
		t.Error("borders must be identical")
	}
	if strings.Index(lines[3], "=>") != strings.Index(lines[4], "=>") {
		t.Errorf("misaligned engine columns:\n%q\n%q", lines[3], lines[4])
	}
	if !strings.Contains(lines[4], "text/html") || !strings.Contains(lines[4], "HTMLTemplateEngine") {
		t.Errorf("engine row malformed: %q", lines[4])
	}
	for _, row := range lines[3 : len(lines)-1] {
		if len(row) > len(lines[0]) {
			t.Errorf("row %q (%d) longer than border (%d)", row, len(row), len(lines[0]))
		}
	}
}

func TestFormatEngineTableBorderCoversLongNames(t *testing.T) {
	rows := [][2]string{
		{"application/json", strings.Repeat("VeryLongTemplateEngineName", 2)},
		{"text/html", "HTMLTemplateEngine"},
	}

	lines := formatEngineTable("Registered template engines", rows)
	for _, row := range lines[3 : len(lines)-1] {
		if len(row) > len(lines[0]) {
			t.Errorf("row %q (%d) longer than border (%d)", row, len(row), len(lines[0]))
		}
	}
}
