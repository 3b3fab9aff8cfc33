// internal/stages/definitions.go
package stages

import (
	"strings"

	"webchain/internal/core/domain"
	"webchain/internal/core/ports"
)

var definitions = map[domain.StageName]definition{
	domain.StageSubfinder: {
		name: domain.StageSubfinder,
		args: func(_ Settings, in ports.StageInput) []string {
			return []string{"-silent", "-d", in.Target.Name, "-o", in.OutputPath}
		},
		collector: func() collector { return &lineCounter{label: "Domains discovered"} },
	},
	domain.StageDnsx: {
		name: domain.StageDnsx,
		args: func(s Settings, in ports.StageInput) []string {
			resolver := s.Resolver
			if resolver == "" {
				resolver = "8.8.8.8"
			}
			return []string{"-silent", "-r", resolver, "-l", in.InputPath, "-o", in.OutputPath}
		},
		collector: func() collector { return &lineCounter{label: "Alive hosts"} },
	},
	domain.StageNaabu: {
		name: domain.StageNaabu,
		args: func(s Settings, in ports.StageInput) []string {
			args := []string{"-silent"}
			if s.NaabuPorts != "" {
				args = append(args, "-p", s.NaabuPorts)
			}
			return append(args, "-list", in.InputPath, "-o", in.OutputPath)
		},
		collector: func() collector { return &hostPortCounter{hosts: map[string]struct{}{}} },
	},
	domain.StageHttpx: {
		name:      domain.StageHttpx,
		usesProxy: true,
		args: func(_ Settings, in ports.StageInput) []string {
			return []string{"-silent", "-list", in.InputPath, "-o", in.OutputPath}
		},
		collector: func() collector { return &lineCounter{label: "Web services detected"} },
	},
	domain.StageKatana: {
		name:      domain.StageKatana,
		usesProxy: true,
		args: func(_ Settings, in ports.StageInput) []string {
			return []string{"-silent", "-jc", "-kf", "all", "-list", in.InputPath, "-o", in.OutputPath}
		},
		collector: func() collector { return &lineCounter{label: "URLs extracted"} },
	},
}

type lineCounter struct {
	label string
}

func (c *lineCounter) observe(string) {}

func (c *lineCounter) metrics(count int) []domain.Metric {
	return []domain.Metric{{Label: c.label, Value: count}}
}

// hostPortCounter cuenta líneas "host:port" y los hosts distintos entre ellas.
type hostPortCounter struct {
	hosts map[string]struct{}
}

func (c *hostPortCounter) observe(line string) {
	host := line
	if i := strings.LastIndex(line, ":"); i > 0 {
		host = line[:i]
	}
	c.hosts[host] = struct{}{}
}

func (c *hostPortCounter) metrics(count int) []domain.Metric {
	return []domain.Metric{
		{Label: "Open ports", Value: count},
		{Label: "Hosts with open ports", Value: len(c.hosts)},
	}
}
