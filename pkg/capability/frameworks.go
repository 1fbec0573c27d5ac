package capability

const (
	FrameworkTypeScript FrameworkID = "typescript"
	FrameworkNode       FrameworkID = "node"
	FrameworkReact      FrameworkID = "react"
	FrameworkNext       FrameworkID = "next"
	FrameworkAngular    FrameworkID = "angular"
	FrameworkVue        FrameworkID = "vue"
	FrameworkNuxt       FrameworkID = "nuxt"
	FrameworkSvelte     FrameworkID = "svelte"
	FrameworkAstro      FrameworkID = "astro"
	FrameworkNest       FrameworkID = "nest"
	FrameworkExpress    FrameworkID = "express"
	FrameworkFastify    FrameworkID = "fastify"
	FrameworkTypeORM    FrameworkID = "typeorm"
	FrameworkStorybook  FrameworkID = "storybook"
	FrameworkTailwind   FrameworkID = "tailwind"
	FrameworkPrettier   FrameworkID = "prettier"
	FrameworkJest       FrameworkID = "jest"
	FrameworkVitest     FrameworkID = "vitest"
	FrameworkVite       FrameworkID = "vite"
	FrameworkRollup     FrameworkID = "rollup"
	FrameworkWebpack    FrameworkID = "webpack"
	FrameworkNone       FrameworkID = "none"
)

// AllFrameworkIDs lists every framework constant; the built-in table must cover it exactly
var AllFrameworkIDs = []FrameworkID{
	FrameworkTypeScript, FrameworkNode,
	FrameworkReact, FrameworkNext, FrameworkAngular, FrameworkVue, FrameworkNuxt,
	FrameworkSvelte, FrameworkAstro, FrameworkNest, FrameworkExpress, FrameworkFastify,
	FrameworkTypeORM, FrameworkStorybook, FrameworkTailwind, FrameworkPrettier,
	FrameworkJest, FrameworkVitest, FrameworkVite, FrameworkRollup, FrameworkWebpack,
	FrameworkNone,
}

var builtinFrameworks = []Framework{
	{
		ID:             FrameworkTypeScript,
		DisplayName:    "TypeScript",
		Description:    "Typed superset of JavaScript",
		FileIndicators: []string{"tsconfig.json", "tsconfig.base.json"},
		PackageIndicators: PackageIndicators{
			Either: []string{"typescript"},
		},
		ImpliedFeatures: []FeatureID{FeatureTypeScript},
		Provides:        []Capability{CapabilityTypeScript},
		IgnoreRules:     []string{"**/*.tsbuildinfo"},
	},
	{
		ID:             FrameworkNode,
		DisplayName:    "Node.js",
		Description:    "Server-side JavaScript runtime",
		FileIndicators: []string{".nvmrc", ".node-version"},
		PackageIndicators: PackageIndicators{
			DevDependencies: []string{"@types/node"},
		},
		ImpliedFeatures:   []FeatureID{FeatureNode},
		SupportsWatchMode: true,
	},
	{
		ID:          FrameworkReact,
		DisplayName: "React",
		Description: "Component-based UI library",
		PackageIndicators: PackageIndicators{
			Dependencies: []string{"react"},
		},
		ImpliedFeatures:   []FeatureID{FeatureReact},
		SupportsWatchMode: true,
		LintTargets:       []string{"src"},
	},
	{
		ID:             FrameworkNext,
		DisplayName:    "Next.js",
		Description:    "React meta-framework",
		FileIndicators: []string{"next.config.js", "next.config.mjs", "next.config.ts"},
		PackageIndicators: PackageIndicators{
			Either: []string{"next"},
		},
		ImpliedFeatures:   []FeatureID{FeatureReact, FeatureNext},
		SupportsWatchMode: true,
		LintTargets:       []string{"app", "pages", "src"},
		IgnoreRules:       []string{".next", "out", "next-env.d.ts"},
	},
	{
		ID:             FrameworkAngular,
		DisplayName:    "Angular",
		Description:    "TypeScript application framework",
		FileIndicators: []string{"angular.json"},
		PackageIndicators: PackageIndicators{
			Dependencies: []string{"@angular/core"},
		},
		ImpliedFeatures:   []FeatureID{FeatureTypeScript},
		Provides:          []Capability{CapabilityTypeScript},
		SupportsWatchMode: true,
		LintTargets:       []string{"src"},
		IgnoreRules:       []string{".angular"},
	},
	{
		ID:             FrameworkVue,
		DisplayName:    "Vue.js",
		Description:    "Progressive UI framework",
		FileIndicators: []string{"vue.config.js"},
		PackageIndicators: PackageIndicators{
			Either: []string{"vue"},
		},
		ImpliedFeatures:   []FeatureID{FeatureVue},
		SupportsWatchMode: true,
		LintTargets:       []string{"src"},
	},
	{
		ID:             FrameworkNuxt,
		DisplayName:    "Nuxt",
		Description:    "Vue meta-framework",
		FileIndicators: []string{"nuxt.config.ts", "nuxt.config.js"},
		PackageIndicators: PackageIndicators{
			Either: []string{"nuxt"},
		},
		ImpliedFeatures:   []FeatureID{FeatureVue},
		SupportsWatchMode: true,
		LintTargets:       []string{"components", "pages", "layouts", "server"},
		IgnoreRules:       []string{".nuxt", ".output"},
	},
	{
		ID:             FrameworkSvelte,
		DisplayName:    "Svelte",
		Description:    "Compiled UI framework",
		FileIndicators: []string{"svelte.config.js", "svelte.config.ts"},
		PackageIndicators: PackageIndicators{
			Either: []string{"svelte", "@sveltejs/kit"},
		},
		ImpliedFeatures:   []FeatureID{FeatureSvelte},
		SupportsWatchMode: true,
		LintTargets:       []string{"src"},
		IgnoreRules:       []string{".svelte-kit"},
	},
	{
		ID:             FrameworkAstro,
		DisplayName:    "Astro",
		Description:    "Content-focused site builder",
		FileIndicators: []string{"astro.config.mjs", "astro.config.js", "astro.config.ts"},
		PackageIndicators: PackageIndicators{
			Either: []string{"astro"},
		},
		SupportsWatchMode: true,
		LintTargets:       []string{"src"},
		IgnoreRules:       []string{".astro"},
	},
	{
		ID:             FrameworkNest,
		DisplayName:    "NestJS",
		Description:    "Node.js server framework",
		FileIndicators: []string{"nest-cli.json"},
		PackageIndicators: PackageIndicators{
			Dependencies: []string{"@nestjs/core"},
		},
		ImpliedFeatures:   []FeatureID{FeatureNest, FeatureTypeScript, FeatureNode},
		Provides:          []Capability{CapabilityTypeScript},
		SupportsWatchMode: true,
		LintTargets:       []string{"src", "test"},
	},
	{
		ID:          FrameworkExpress,
		DisplayName: "Express",
		Description: "Minimal Node.js web framework",
		PackageIndicators: PackageIndicators{
			Dependencies: []string{"express"},
		},
		ImpliedFeatures:   []FeatureID{FeatureNode},
		SupportsWatchMode: true,
	},
	{
		ID:          FrameworkFastify,
		DisplayName: "Fastify",
		Description: "Low overhead Node.js web framework",
		PackageIndicators: PackageIndicators{
			Dependencies: []string{"fastify"},
		},
		ImpliedFeatures:   []FeatureID{FeatureNode},
		SupportsWatchMode: true,
	},
	{
		ID:          FrameworkTypeORM,
		DisplayName: "TypeORM",
		Description: "TypeScript ORM",
		PackageIndicators: PackageIndicators{
			Dependencies: []string{"typeorm"},
		},
		ImpliedFeatures: []FeatureID{FeatureTypeORM},
	},
	{
		ID:             FrameworkStorybook,
		DisplayName:    "Storybook",
		Description:    "UI component workshop",
		FileIndicators: []string{".storybook/main.js", ".storybook/main.ts"},
		PackageIndicators: PackageIndicators{
			DevDependencies: []string{"storybook"},
		},
		ImpliedFeatures: []FeatureID{FeatureStorybook},
		LintTargets:     []string{".storybook"},
		IgnoreRules:     []string{"storybook-static"},
	},
	{
		ID:             FrameworkTailwind,
		DisplayName:    "Tailwind CSS",
		Description:    "Utility-first CSS framework",
		FileIndicators: []string{"tailwind.config.js", "tailwind.config.ts"},
		PackageIndicators: PackageIndicators{
			Either: []string{"tailwindcss"},
		},
		ImpliedFeatures: []FeatureID{FeatureTailwindCSS, FeatureCSS},
	},
	{
		ID:             FrameworkPrettier,
		DisplayName:    "Prettier",
		Description:    "Opinionated code formatter",
		FileIndicators: []string{".prettierrc", ".prettierrc.json", "prettier.config.js"},
		PackageIndicators: PackageIndicators{
			DevDependencies: []string{"prettier"},
		},
		ImpliedFeatures: []FeatureID{FeaturePrettier},
	},
	{
		ID:             FrameworkJest,
		DisplayName:    "Jest",
		Description:    "JavaScript test runner",
		FileIndicators: []string{"jest.config.js", "jest.config.ts"},
		PackageIndicators: PackageIndicators{
			DevDependencies: []string{"jest"},
		},
		ImpliedFeatures: []FeatureID{FeatureJest},
		LintTargets:     []string{"test", "__tests__"},
		IgnoreRules:     []string{"coverage"},
	},
	{
		ID:             FrameworkVitest,
		DisplayName:    "Vitest",
		Description:    "Vite-native test runner",
		FileIndicators: []string{"vitest.config.ts", "vitest.config.js"},
		PackageIndicators: PackageIndicators{
			DevDependencies: []string{"vitest"},
		},
		ImpliedFeatures: []FeatureID{FeatureVitest},
		LintTargets:     []string{"test"},
		IgnoreRules:     []string{"coverage"},
	},
	{
		ID:             FrameworkVite,
		DisplayName:    "Vite",
		Description:    "Frontend build tool",
		FileIndicators: []string{"vite.config.ts", "vite.config.js", "vite.config.mjs"},
		PackageIndicators: PackageIndicators{
			DevDependencies: []string{"vite"},
		},
		SupportsWatchMode: true,
	},
	{
		ID:             FrameworkRollup,
		DisplayName:    "Rollup",
		Description:    "Module bundler for libraries",
		FileIndicators: []string{"rollup.config.js", "rollup.config.mjs", "rollup.config.ts"},
		PackageIndicators: PackageIndicators{
			DevDependencies: []string{"rollup"},
		},
		SupportsWatchMode: true,
	},
	{
		ID:             FrameworkWebpack,
		DisplayName:    "webpack",
		Description:    "Module bundler",
		FileIndicators: []string{"webpack.config.js", "webpack.config.ts"},
		PackageIndicators: PackageIndicators{
			DevDependencies: []string{"webpack"},
		},
		SupportsWatchMode: true,
	},
	{
		ID:          FrameworkNone,
		DisplayName: "Generic project",
		Description: "No specific framework",
	},
}
