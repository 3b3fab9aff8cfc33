// internal/platform/ui/ascii.go
package ui

// BannerCompact es el banner del header principal.
const BannerCompact = `
 _      __    __        __        _
| | /| / /__ / /  ____ / /  ___ _(_)__
| |/ |/ / -_) _ \/ __// _ \/ _ '/ / _ \
|__/|__/\__/_.__/\__//_//_/\_,_/_/_//_/
  subfinder > dnsx > naabu > httpx > katana
`
