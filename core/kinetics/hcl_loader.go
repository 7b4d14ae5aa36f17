package kinetics

import (
	"os"

	"github.com/hashicorp/hcl/v2/hclsimple"

	"freshchain/internal/errors"
)

// profilesFile is the root schema of a kinetic profiles HCL file
type profilesFile struct {
	Products []productBlock `hcl:"product,block"`
}

// productBlock is one product definition:
//
//	product "apple" {
//	  activation_energy = 70000
//	  rate_constant     = 2.0e11
//	  ref_life_days     = 60
//	}
type productBlock struct {
	Name             string  `hcl:"name,label"`
	ActivationEnergy float64 `hcl:"activation_energy"`
	RateConstant     float64 `hcl:"rate_constant"`
	RefLifeDays      float64 `hcl:"ref_life_days"`
}

// LoadProfiles builds a registry from the built-in table merged with the
// product blocks of an HCL file. File entries override built-ins of the same
// name. An empty path returns the built-in registry unchanged.
func LoadProfiles(path string) (*Registry, error) {
	if path == "" {
		return DefaultRegistry(), nil
	}

	if _, err := os.Stat(path); err != nil {
		return nil, errors.Config("kinetic profiles file not found: "+path, err)
	}

	var file profilesFile
	if err := hclsimple.DecodeFile(path, nil, &file); err != nil {
		return nil, errors.Config("failed to parse kinetic profiles", err)
	}

	merged := make(map[string]Profile, len(builtinProfiles)+len(file.Products))
	for _, p := range builtinProfiles {
		merged[Normalize(p.Product)] = p
	}
	for _, block := range file.Products {
		p := Profile{
			Product:          block.Name,
			ActivationEnergy: block.ActivationEnergy,
			RateConstant:     block.RateConstant,
			RefLifeDays:      block.RefLifeDays,
		}
		merged[Normalize(block.Name)] = p
	}

	profiles := make([]Profile, 0, len(merged))
	for _, p := range merged {
		profiles = append(profiles, p)
	}
	return NewRegistry(profiles)
}
