package workload

// Layer is the declarative process-supervision specification applied to the
// workload container.
type Layer struct {
	Summary     string             `yaml:"summary,omitempty"`
	Description string             `yaml:"description,omitempty"`
	Services    map[string]Service `yaml:"services"`
}

// Service describes one supervised process within a layer.
type Service struct {
	Override    string            `yaml:"override,omitempty"`
	Summary     string            `yaml:"summary,omitempty"`
	Command     string            `yaml:"command"`
	Startup     string            `yaml:"startup,omitempty"`
	Environment map[string]string `yaml:"environment,omitempty"`
}

func (s Service) equal(other Service) bool {
	if s.Override != other.Override ||
		s.Summary != other.Summary ||
		s.Command != other.Command ||
		s.Startup != other.Startup {
		return false
	}
	if len(s.Environment) != len(other.Environment) {
		return false
	}
	for k, v := range s.Environment {
		if other.Environment[k] != v {
			return false
		}
	}
	return true
}

// ServicesEqual reports whether every service of the desired layer is
// already running with an identical specification. Services outside the
// layer are ignored: the layer only governs what it declares.
func ServicesEqual(desired Layer, running map[string]Service) bool {
	for name, svc := range desired.Services {
		current, ok := running[name]
		if !ok || !svc.equal(current) {
			return false
		}
	}
	return true
}
