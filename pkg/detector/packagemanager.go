package detector

import "strings"

// PackageManager is the JavaScript package manager a project uses
type PackageManager string

const (
	PackageManagerBun       PackageManager = "bun"
	PackageManagerYarnBerry PackageManager = "yarn-berry"
	PackageManagerPnpm      PackageManager = "pnpm"
	PackageManagerYarn      PackageManager = "yarn"
	PackageManagerNpm       PackageManager = "npm"
)

// DetectPackageManager infers the package manager from lockfiles.
// Priority: bun > yarn berry > pnpm > yarn classic > npm.
func DetectPackageManager(ev Evidence) PackageManager {
	has := func(rel string) bool {
		ok, err := ev.FileExists(rel)
		return err == nil && ok
	}

	switch {
	case has("bun.lockb") || has("bun.lock"):
		return PackageManagerBun
	case has(".yarnrc.yml"):
		return PackageManagerYarnBerry
	case has("pnpm-lock.yaml"):
		return PackageManagerPnpm
	case has("yarn.lock"):
		return PackageManagerYarn
	default:
		return PackageManagerNpm
	}
}

// AddCommand returns the command that installs packages as dev dependencies.
// It is only ever displayed, never executed.
func (pm PackageManager) AddCommand(packages []string) string {
	if len(packages) == 0 {
		return ""
	}

	var prefix string
	switch pm {
	case PackageManagerBun:
		prefix = "bun add -d"
	case PackageManagerPnpm:
		prefix = "pnpm add -D"
	case PackageManagerYarn, PackageManagerYarnBerry:
		prefix = "yarn add -D"
	default:
		prefix = "npm install -D"
	}
	return prefix + " " + strings.Join(packages, " ")
}

// RunCommand returns the command that runs a package script
func (pm PackageManager) RunCommand(script string) string {
	switch pm {
	case PackageManagerNpm, "":
		return "npm run " + script
	case PackageManagerYarn, PackageManagerYarnBerry:
		return "yarn " + script
	default:
		return string(pm) + " run " + script
	}
}
