// internal/testutil/fixtures.go
package testutil

// Fixture data para tests (valores primitivos solamente, sin dependencias de domain)

// FixtureDomains contiene dominios de prueba válidos.
var FixtureDomains = []string{
	"example.com",
	"test.example.com",
	"subdomain.example.com",
	"another.test.example.com",
}

// FixtureInvalidDomains contiene objetivos que no deben aceptarse.
var FixtureInvalidDomains = []string{
	"",
	"   ",
	"not a domain",
	"-invalid.com",
	"invalid-.com",
	".example.com",
	"example..com",
	"com",
	"co.uk",
}

// FixturePdtmListing es una salida real de `pdtm` con colores ANSI y banner.
const FixturePdtmListing = "\x1b[34m                ____\x1b[0m\n" +
	"\x1b[34m     ____  ____/ / /_____ ___\x1b[0m\n" +
	"[\x1b[34mINF\x1b[0m] Current pdtm version v0.1.3 (\x1b[92mlatest\x1b[0m)\n" +
	"[\x1b[34mINF\x1b[0m] Path to download project binary: /home/user/.pdtm/go/bin\n" +
	"1. \x1b[34msubfinder\x1b[0m (\x1b[93moutdated\x1b[0m) (2.9.0) ➡ (2.10.0)\r\n" +
	"2. \x1b[34mdnsx\x1b[0m (\x1b[92mlatest\x1b[0m) (1.2.2)\n" +
	"3. \x1b[34mnaabu\x1b[0m (\x1b[92mlatest\x1b[0m) (2.3.5)\n" +
	"4. \x1b[34mhttpx\x1b[0m (\x1b[92mlatest\x1b[0m) (1.7.1)\n" +
	"5. \x1b[34mkatana\x1b[0m (\x1b[92mlatest\x1b[0m) (1.2.2)\n" +
	"6. \x1b[34mnuclei\x1b[0m (\x1b[91mnot installed\x1b[0m)\n" +
	"7. \x1b[34mcloudlist\x1b[0m (\x1b[90mnot supported\x1b[0m)\n"

// FixtureURLs contiene URLs como las que produce katana.
var FixtureURLs = []string{
	"https://example.com/login",
	"https://example.com/api/v1/users?id=1",
	"https://admin.example.com/dashboard",
	"http://test.example.com:8080/static/app.js",
}
