package capability

const (
	FeatureJavaScript       FeatureID = "javascript"
	FeatureTypeScript       FeatureID = "typescript"
	FeatureTypeScriptStrict FeatureID = "typescriptStrict"
	FeatureReact            FeatureID = "react"
	FeatureNext             FeatureID = "next"
	FeatureVue              FeatureID = "vue"
	FeatureSvelte           FeatureID = "svelte"
	FeatureNest             FeatureID = "nest"
	FeatureNode             FeatureID = "node"
	FeatureTypeORM          FeatureID = "typeorm"
	FeatureStorybook        FeatureID = "storybook"
	FeatureI18next          FeatureID = "i18next"
	FeatureTanstack         FeatureID = "tanstack"
	FeatureFSD              FeatureID = "fsd"
	FeaturePrettier         FeatureID = "prettier"
	FeatureStylistic        FeatureID = "stylistic"
	FeatureCSS              FeatureID = "css"
	FeatureTailwindCSS      FeatureID = "tailwindCss"
	FeatureJest             FeatureID = "jest"
	FeatureVitest           FeatureID = "vitest"
	FeatureSonar            FeatureID = "sonar"
	FeatureUnicorn          FeatureID = "unicorn"
	FeaturePerfectionist    FeatureID = "perfectionist"
	FeatureJSDoc            FeatureID = "jsDoc"
	FeatureRegexp           FeatureID = "regexp"
	FeatureNoSecrets        FeatureID = "noSecrets"
	FeatureCheckFile        FeatureID = "checkFile"
	FeatureJSON             FeatureID = "json"
	FeatureYAML             FeatureID = "yaml"
	FeaturePackageJSON      FeatureID = "packageJson"
	FeatureMarkdown         FeatureID = "markdown"
)

// AllFeatureIDs lists every feature constant; the built-in table must cover it exactly
var AllFeatureIDs = []FeatureID{
	FeatureJavaScript, FeatureTypeScript, FeatureTypeScriptStrict,
	FeatureReact, FeatureNext, FeatureVue, FeatureSvelte, FeatureNest, FeatureNode,
	FeatureTypeORM, FeatureStorybook, FeatureI18next, FeatureTanstack, FeatureFSD,
	FeaturePrettier, FeatureStylistic, FeatureCSS, FeatureTailwindCSS,
	FeatureJest, FeatureVitest,
	FeatureSonar, FeatureUnicorn, FeaturePerfectionist, FeatureJSDoc, FeatureRegexp,
	FeatureNoSecrets, FeatureCheckFile,
	FeatureJSON, FeatureYAML, FeaturePackageJSON, FeatureMarkdown,
}

var builtinFeatures = []Feature{
	{
		ID:               FeatureJavaScript,
		Description:      "Core JavaScript rules",
		Group:            GroupCore,
		Flag:             "withJavascript",
		RequiredPackages: []string{"@eslint/js", "globals"},
		IsRequired:       true,
	},
	{
		ID:                 FeatureTypeScript,
		Description:        "TypeScript parser and type-aware rules",
		Group:              GroupLanguages,
		Flag:               "withTypescript",
		RequiredPackages:   []string{"typescript-eslint"},
		RequiresCapability: CapabilityTypeScript,
	},
	{
		ID:                 FeatureTypeScriptStrict,
		Description:        "Strict TypeScript rule set",
		Group:              GroupLanguages,
		Flag:               "withTypescriptStrict",
		RequiredPackages:   []string{"typescript-eslint"},
		RequiresCapability: CapabilityTypeScript,
	},
	{
		ID:               FeatureReact,
		Description:      "React and hooks rules",
		Group:            GroupFrameworks,
		Flag:             "withReact",
		RequiredPackages: []string{"eslint-plugin-react", "eslint-plugin-react-hooks"},
	},
	{
		ID:               FeatureNext,
		Description:      "Next.js rules",
		Group:            GroupFrameworks,
		Flag:             "withNext",
		RequiredPackages: []string{"@next/eslint-plugin-next"},
	},
	{
		ID:               FeatureVue,
		Description:      "Vue single file component rules",
		Group:            GroupFrameworks,
		Flag:             "withVue",
		RequiredPackages: []string{"eslint-plugin-vue", "vue-eslint-parser"},
	},
	{
		ID:               FeatureSvelte,
		Description:      "Svelte component rules",
		Group:            GroupFrameworks,
		Flag:             "withSvelte",
		RequiredPackages: []string{"eslint-plugin-svelte", "svelte-eslint-parser"},
	},
	{
		ID:                 FeatureNest,
		Description:        "NestJS decorator and module rules",
		Group:              GroupFrameworks,
		Flag:               "withNest",
		RequiredPackages:   []string{"@elsikora/eslint-plugin-nestjs-typed"},
		RequiresCapability: CapabilityTypeScript,
	},
	{
		ID:               FeatureNode,
		Description:      "Node.js runtime rules",
		Group:            GroupFrameworks,
		Flag:             "withNode",
		RequiredPackages: []string{"eslint-plugin-n"},
	},
	{
		ID:                 FeatureTypeORM,
		Description:        "TypeORM entity rules",
		Group:              GroupFrameworks,
		Flag:               "withTypeorm",
		RequiredPackages:   []string{"eslint-plugin-typeorm-typescript"},
		AutoDetectEvidence: []string{"typeorm"},
		RequiresCapability: CapabilityTypeScript,
	},
	{
		ID:                 FeatureStorybook,
		Description:        "Storybook story rules",
		Group:              GroupFrameworks,
		Flag:               "withStorybook",
		RequiredPackages:   []string{"eslint-plugin-storybook"},
		AutoDetectEvidence: []string{"storybook", "@storybook/react", "@storybook/vue3"},
	},
	{
		ID:                 FeatureI18next,
		Description:        "i18next literal string rules",
		Group:              GroupFrameworks,
		Flag:               "withI18next",
		RequiredPackages:   []string{"eslint-plugin-i18next"},
		AutoDetectEvidence: []string{"i18next", "react-i18next"},
	},
	{
		ID:                 FeatureTanstack,
		Description:        "TanStack Query rules",
		Group:              GroupFrameworks,
		Flag:               "withTanstack",
		RequiredPackages:   []string{"@tanstack/eslint-plugin-query"},
		AutoDetectEvidence: []string{"@tanstack/react-query", "@tanstack/vue-query"},
	},
	{
		ID:               FeatureFSD,
		Description:      "Feature-Sliced Design layering rules",
		Group:            GroupFrameworks,
		Flag:             "withFsd",
		RequiredPackages: []string{"@conarti/eslint-plugin-feature-sliced"},
	},
	{
		ID:                 FeaturePrettier,
		Description:        "Prettier formatting through ESLint",
		Group:              GroupStyling,
		Flag:               "withPrettier",
		RequiredPackages:   []string{"prettier", "eslint-plugin-prettier", "eslint-config-prettier"},
		AutoDetectEvidence: []string{"prettier"},
	},
	{
		ID:               FeatureStylistic,
		Description:      "Stylistic formatting rules",
		Group:            GroupStyling,
		Flag:             "withStylistic",
		RequiredPackages: []string{"@stylistic/eslint-plugin"},
	},
	{
		ID:               FeatureCSS,
		Description:      "CSS file rules",
		Group:            GroupStyling,
		Flag:             "withCss",
		RequiredPackages: []string{"@eslint/css"},
	},
	{
		ID:                 FeatureTailwindCSS,
		Description:        "Tailwind CSS class rules",
		Group:              GroupStyling,
		Flag:               "withTailwindCss",
		RequiredPackages:   []string{"eslint-plugin-tailwindcss"},
		AutoDetectEvidence: []string{"tailwindcss"},
	},
	{
		ID:                 FeatureJest,
		Description:        "Jest test rules",
		Group:              GroupTesting,
		Flag:               "withJest",
		RequiredPackages:   []string{"eslint-plugin-jest"},
		AutoDetectEvidence: []string{"jest"},
	},
	{
		ID:                 FeatureVitest,
		Description:        "Vitest test rules",
		Group:              GroupTesting,
		Flag:               "withVitest",
		RequiredPackages:   []string{"@vitest/eslint-plugin"},
		AutoDetectEvidence: []string{"vitest"},
	},
	{
		ID:               FeatureSonar,
		Description:      "SonarJS bug and code smell rules",
		Group:            GroupCodeQuality,
		Flag:             "withSonar",
		RequiredPackages: []string{"eslint-plugin-sonarjs"},
	},
	{
		ID:               FeatureUnicorn,
		Description:      "Unicorn best practice rules",
		Group:            GroupCodeQuality,
		Flag:             "withUnicorn",
		RequiredPackages: []string{"eslint-plugin-unicorn"},
	},
	{
		ID:               FeaturePerfectionist,
		Description:      "Sorted imports, objects and members",
		Group:            GroupCodeQuality,
		Flag:             "withPerfectionist",
		RequiredPackages: []string{"eslint-plugin-perfectionist"},
	},
	{
		ID:               FeatureJSDoc,
		Description:      "JSDoc comment rules",
		Group:            GroupCodeQuality,
		Flag:             "withJsDoc",
		RequiredPackages: []string{"eslint-plugin-jsdoc"},
	},
	{
		ID:               FeatureRegexp,
		Description:      "Regular expression rules",
		Group:            GroupCodeQuality,
		Flag:             "withRegexp",
		RequiredPackages: []string{"eslint-plugin-regexp"},
	},
	{
		ID:               FeatureNoSecrets,
		Description:      "Detect committed secrets",
		Group:            GroupCodeQuality,
		Flag:             "withNoSecrets",
		RequiredPackages: []string{"eslint-plugin-no-secrets"},
	},
	{
		ID:               FeatureCheckFile,
		Description:      "File and folder naming rules",
		Group:            GroupCodeQuality,
		Flag:             "withCheckFile",
		RequiredPackages: []string{"eslint-plugin-check-file"},
	},
	{
		ID:               FeatureJSON,
		Description:      "JSON and JSONC files",
		Group:            GroupFileTypes,
		Flag:             "withJson",
		RequiredPackages: []string{"eslint-plugin-jsonc"},
	},
	{
		ID:               FeatureYAML,
		Description:      "YAML files",
		Group:            GroupFileTypes,
		Flag:             "withYaml",
		RequiredPackages: []string{"eslint-plugin-yml"},
	},
	{
		ID:               FeaturePackageJSON,
		Description:      "package.json conventions",
		Group:            GroupFileTypes,
		Flag:             "withPackageJson",
		RequiredPackages: []string{"eslint-plugin-package-json"},
	},
	{
		ID:               FeatureMarkdown,
		Description:      "Markdown files and code blocks",
		Group:            GroupFileTypes,
		Flag:             "withMarkdown",
		RequiredPackages: []string{"@eslint/markdown"},
	},
}
