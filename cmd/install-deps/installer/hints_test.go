package installer

import (
	"strings"
	"testing"

	"webchain/internal/core/domain"
	"webchain/internal/testutil"
)

func TestActionHint_Update(t *testing.T) {
	h := ActionHint(domain.Action{Tool: "httpx", Kind: domain.ActionUpdate})

	testutil.AssertEqual(t, h.Reason, "automatic update failed", "reason")
	testutil.AssertContains(t, h.Solutions, "Retry manually: pdtm -u httpx", "manual command")
	testutil.AssertEqual(t, h.DocsURL, "https://github.com/projectdiscovery/httpx", "docs url")
}

func TestActionHint_NaabuInstall(t *testing.T) {
	h := ActionHint(domain.Action{Tool: "naabu", Kind: domain.ActionInstall})

	testutil.AssertContains(t, h.Solutions, "Retry manually: sudo apt install naabu -y", "apt command")
	testutil.AssertContains(t, h.Solutions, "Install libpcap first: sudo apt install -y libpcap-dev", "libpcap hint")
}

func TestUnlistedHint(t *testing.T) {
	h := UnlistedHint("naabu", "pdtm")

	testutil.AssertEqual(t, h.Reason, "not listed by pdtm", "reason")
	testutil.AssertContains(t, h.Solutions, "Install it from source: go install -v github.com/projectdiscovery/naabu/v2/cmd/naabu@latest", "source path")

	h = UnlistedHint("katana", "pdtm")
	testutil.AssertContains(t, h.Solutions, "Install it from source: go install -v github.com/projectdiscovery/katana/cmd/katana@latest", "katana has no v2")
}

func TestHint_String(t *testing.T) {
	out := ManagerHint("pdtm").String()

	testutil.AssertTrue(t, strings.HasPrefix(out, "pdtm: the tool manager is not installed"), "header line")
	testutil.AssertContains(t, out, "1) go install -v github.com/projectdiscovery/pdtm/cmd/pdtm@latest", "numbered solution")
	testutil.AssertContains(t, out, "For more help: https://github.com/projectdiscovery/pdtm", "docs")
}

func TestPathHint(t *testing.T) {
	h := PathHint("/home/op/.pdtm/go/bin", []string{"dnsx", "katana"})

	testutil.AssertEqual(t, h.Tool, "dnsx, katana", "tools")
	testutil.AssertContains(t, h.Solutions, `export PATH="$PATH:/home/op/.pdtm/go/bin"`, "export line")
}

func TestDocsURL_Unknown(t *testing.T) {
	testutil.AssertEqual(t, DocsURL("nuclei"), "https://github.com/search?q=nuclei", "fallback")
}
