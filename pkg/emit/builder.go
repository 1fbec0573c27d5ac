package emit

import (
	_ "embed"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

//go:embed templates/rollup.config.js.tmpl
var builderConfigTemplate string

// BuilderFormat is a bundle output format
type BuilderFormat string

const (
	FormatESM BuilderFormat = "esm"
	FormatCJS BuilderFormat = "cjs"
	FormatUMD BuilderFormat = "umd"
)

// BuilderFormats lists the supported formats in output order
var BuilderFormats = []BuilderFormat{FormatESM, FormatCJS, FormatUMD}

// BuilderOptions are the choices of the builder flow.
type BuilderOptions struct {
	Input        string
	OutputDir    string
	Formats      []BuilderFormat
	Name         string // global name, required for umd
	TypeScript   bool
	Sourcemap    bool
	Minify       bool
	Declarations bool
}

func (o BuilderOptions) has(f BuilderFormat) bool {
	for _, v := range o.Formats {
		if v == f {
			return true
		}
	}
	return false
}

// Validate checks the options before rendering
func (o BuilderOptions) Validate() error {
	if o.Input == "" {
		return errors.New("builder input is required")
	}
	if len(o.Formats) == 0 {
		return errors.New("at least one output format is required")
	}
	for _, f := range o.Formats {
		switch f {
		case FormatESM, FormatCJS, FormatUMD:
		default:
			return fmt.Errorf("unknown output format %q", f)
		}
	}
	if o.has(FormatUMD) && o.Name == "" {
		return errors.New("umd output requires a global name")
	}
	if o.Declarations && !o.TypeScript {
		return errors.New("declarations require TypeScript")
	}
	return nil
}

var formatFiles = map[BuilderFormat]string{
	FormatESM: "index.mjs",
	FormatCJS: "index.cjs",
	FormatUMD: "index.umd.js",
}

// BuilderConfig renders a rollup configuration for opts.
func BuilderConfig(opts BuilderOptions, indent string) (Artifact, error) {
	if err := opts.Validate(); err != nil {
		return Artifact{}, err
	}
	outDir := strings.TrimSuffix(opts.OutputDir, "/")
	if outDir == "" {
		outDir = "dist"
	}

	dependencies := []string{"rollup", "@rollup/plugin-node-resolve", "@rollup/plugin-commonjs"}
	imports := []string{
		`import resolve from "@rollup/plugin-node-resolve";`,
		`import commonjs from "@rollup/plugin-commonjs";`,
	}
	plugins := []string{"resolve()", "commonjs()"}

	if opts.TypeScript {
		dependencies = append(dependencies, "@rollup/plugin-typescript", "tslib", "typescript")
		imports = append(imports, `import typescript from "@rollup/plugin-typescript";`)
		if opts.Declarations {
			plugins = append(plugins, fmt.Sprintf(`typescript({ tsconfig: "./tsconfig.json", declaration: true, declarationDir: %q })`, outDir+"/types"))
		} else {
			plugins = append(plugins, `typescript({ tsconfig: "./tsconfig.json" })`)
		}
	}
	if opts.Minify {
		dependencies = append(dependencies, "@rollup/plugin-terser")
		imports = append(imports, `import terser from "@rollup/plugin-terser";`)
		plugins = append(plugins, "terser()")
	}

	var outputs strings.Builder
	for _, f := range BuilderFormats {
		if !opts.has(f) {
			continue
		}
		outputs.WriteString("    {\n")
		fmt.Fprintf(&outputs, "      file: %q,\n", outDir+"/"+formatFiles[f])
		fmt.Fprintf(&outputs, "      format: %q,\n", string(f))
		if f == FormatUMD {
			fmt.Fprintf(&outputs, "      name: %q,\n", opts.Name)
		}
		fmt.Fprintf(&outputs, "      sourcemap: %t,\n", opts.Sourcemap)
		outputs.WriteString("    },\n")
	}

	var pluginLines strings.Builder
	for _, p := range plugins {
		fmt.Fprintf(&pluginLines, "    %s,\n", p)
	}

	text := render(builderConfigTemplate, map[string]string{
		"IMPORTS": strings.Join(imports, "\n") + "\n",
		"INPUT":   strconv.Quote(opts.Input),
		"OUTPUTS": outputs.String(),
		"PLUGINS": pluginLines.String(),
	})
	if indent == "" {
		indent = DefaultIndent
	}

	return Artifact{Text: reindent(text, indent), Dependencies: dependencies}, nil
}
