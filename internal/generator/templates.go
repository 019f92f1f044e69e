package generator

const NextConfigTemplate = `/** @type {import('next').NextConfig} */
const nextConfig = {
  output: "export",
  trailingSlash: true,
  images: {
    unoptimized: true,
  },
};

export default nextConfig;
`

const PostCSSConfigTemplate = `/** @type {import('postcss-load-config').Config} */
const config = {
  plugins: {
    tailwindcss: {},
    autoprefixer: {},
  },
};

export default config;
`

const TailwindConfigTemplate = `import type { Config } from "tailwindcss";

const config: Config = {
  content: ["./app/**/*.{ts,tsx}"],
  theme: {
    extend: {
      colors: {
{{- range .Colors }}
        {{ jsString . }}: "var(--{{ . }})",
{{- end }}
      },
      fontFamily: {
{{- range .Fonts }}
        {{ jsString . }}: ["var(--{{ . }})"],
{{- end }}
      },
      borderRadius: {
        DEFAULT: "var(--radius)",
        lg: "var(--radius)",
        md: "calc(var(--radius) - 2px)",
        sm: "calc(var(--radius) - 4px)",
      },
    },
  },
  plugins: [],
};

export default config;
`

const GlobalsCSSTemplate = `@tailwind base;
@tailwind components;
@tailwind utilities;

:root {
{{- range .Declarations }}
  {{ . }}
{{- end }}
}

body {
{{- range .FontDeclarations }}
  {{ . }}
{{- end }}
  background: var(--background);
  color: var(--foreground);
  font-family: var(--sans);
}

h1,
h2,
h3 {
  font-family: var(--heading);
}
`

const LayoutTemplate = `import type { Metadata } from "next";
{{- range .Fonts }}
import { {{ .Import }} } from "next/font/google";
{{- end }}
import "./globals.css";
{{ range .Fonts }}
const {{ .Var }} = {{ .Import }}({
  subsets: ["latin"],
{{- if .Weights }}
  weight: [{{ range $i, $w := .Weights }}{{ if $i }}, {{ end }}{{ jsString $w }}{{ end }}],
{{- end }}
  display: "swap",
  variable: {{ jsString .CSSVar }},
});
{{ end }}
export const metadata: Metadata = {
  title: {{ jsString .Title }},
};

export default function RootLayout({ children }: { children: React.ReactNode }) {
  return (
    <html lang={ {{ jsString .Lang }} }>
      <body className={{ .BodyClassName }}>
{{- if .Header.Enabled }}
        <header className="site-header" data-variant={ {{ jsString .Header.Component }} }>
          <span className="font-semibold">{ {{ jsString .Title }} }</span>
        </header>
{{- end }}
        <main>{children}</main>
{{- if .Footer.Enabled }}
        <footer className="site-footer" data-variant={ {{ jsString .Footer.Component }} }>
          <small>&copy; {new Date().getFullYear()} { {{ jsString .Title }} }</small>
        </footer>
{{- end }}
      </body>
    </html>
  );
}
`

const PageTemplate = `import content from "../content/content.json";
import theme from "../content/theme.json";

type Fields = Record<string, unknown>;
type Dictionary = Record<string, Record<string, Fields>>;

const DEFAULT_LOCALE = {{ jsString .DefaultLocale }};

const SECTION_KEYS: Record<string, string> = {
{{- range .Sections }}
  {{ jsString .Name }}: {{ jsString .Key }},
{{- end }}
};

export default function Page() {
  const dictionary = (content as Dictionary)[DEFAULT_LOCALE] ?? {};

  return (
    <>
      {theme.layout.sections.map((section, index) => {
        const key = SECTION_KEYS[section.name];
        const fields = key ? dictionary[key] : undefined;
        if (!fields) {
          return null;
        }
        return (
          <section key={section.name + "-" + index} id={key} className="px-6 py-16">
            {Object.entries(fields).map(([name, value]) => (
              <div key={name} data-field={name}>
                {typeof value === "string" ? value : JSON.stringify(value)}
              </div>
            ))}
          </section>
        );
      })}
    </>
  );
}
`
