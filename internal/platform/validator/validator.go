// internal/platform/validator/validator.go
package validator

import (
	"net"
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/net/idna"
	"golang.org/x/net/publicsuffix"
)

var (
	domainRegex = regexp.MustCompile(`^([a-z0-9]([a-z0-9\-]{0,61}[a-z0-9])?\.)*[a-z0-9]([a-z0-9\-]{0,61}[a-z0-9])?$`)
	schemeRegex = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9+.\-]*://`)
	dirReplacer = strings.NewReplacer("/", "_", "\\", "_", ":", "_")
)

// Domain validators

// IsDomain verifica si un string es un nombre de host ASCII válido (punycode incluido).
// Las IPs no cuentan como dominio.
func IsDomain(domain string) bool {
	if len(domain) == 0 || len(domain) > 253 {
		return false
	}
	if !domainRegex.MatchString(strings.ToLower(domain)) {
		return false
	}
	return net.ParseIP(domain) == nil
}

// IsSubdomain verifica si subdomain es un subdominio válido de baseDomain.
func IsSubdomain(subdomain, baseDomain string) bool {
	subdomain = strings.ToLower(strings.TrimSpace(subdomain))
	baseDomain = strings.ToLower(strings.TrimSpace(baseDomain))

	if subdomain == baseDomain {
		return false
	}

	return strings.HasSuffix(subdomain, "."+baseDomain)
}

// NormalizeDomain reduce una entrada del operador a un nombre de host canónico:
// sin espacios, sin esquema, sin credenciales, sin path/query/fragment, sin puerto,
// sin punto final, en minúsculas y con IDN convertido a ASCII.
//
//	NormalizeDomain(" https://user@Bücher.Example:8443/path?q=1 ") == "xn--bcher-kva.example"
func NormalizeDomain(raw string) string {
	host := strings.TrimSpace(raw)
	host = schemeRegex.ReplaceAllString(host, "")

	if i := strings.IndexAny(host, "/?#"); i >= 0 {
		host = host[:i]
	}
	if i := strings.LastIndex(host, "@"); i >= 0 {
		host = host[i+1:]
	}
	host = stripPort(host)
	host = strings.TrimSuffix(host, ".")
	host = strings.ToLower(host)

	if ascii, err := idna.Lookup.ToASCII(host); err == nil {
		host = ascii
	}
	return host
}

// stripPort quita ":port" sin romper IPv6 sin corchetes.
func stripPort(host string) string {
	if strings.HasPrefix(host, "[") {
		if end := strings.Index(host, "]"); end > 0 {
			return host[1:end]
		}
		return host
	}
	if strings.Count(host, ":") == 1 {
		return host[:strings.Index(host, ":")]
	}
	return host
}

// IsPublicSuffix reporta si name es en sí mismo un sufijo público (com, co.uk, ...).
// Los nombres de una sola etiqueta también cuentan, por la regla implícita "*".
func IsPublicSuffix(name string) bool {
	suffix, _ := publicsuffix.PublicSuffix(name)
	return suffix == name
}

// ApexDomain devuelve el eTLD+1 de name, o name si no se puede derivar.
func ApexDomain(name string) string {
	apex, err := publicsuffix.EffectiveTLDPlusOne(name)
	if err != nil {
		return name
	}
	return apex
}

// SafeDirName convierte un nombre de host en un nombre de directorio seguro.
func SafeDirName(name string) string {
	return dirReplacer.Replace(name)
}

// Network validators

// IsIP verifica si un string es una dirección IP válida (v4 o v6).
func IsIP(ip string) bool {
	return net.ParseIP(ip) != nil
}

// IsPort valida que un puerto esté en el rango válido [1-65535].
func IsPort(portStr string) bool {
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return false
	}
	return port >= 1 && port <= 65535
}

// IsHostPort valida un endpoint "host:port" como el que recibe --proxy.
func IsHostPort(s string) bool {
	host, port, err := net.SplitHostPort(s)
	if err != nil || host == "" {
		return false
	}
	if !IsPort(port) {
		return false
	}
	return IsIP(host) || IsDomain(host)
}

// Generic validators

// IsEmpty verifica si un string está vacío o solo contiene espacios.
func IsEmpty(s string) bool {
	return len(strings.TrimSpace(s)) == 0
}

// IsComment reporta si una línea de un archivo de objetivos es un comentario.
func IsComment(line string) bool {
	return strings.HasPrefix(strings.TrimSpace(line), "#")
}
