package mcpserver

// PreviewSchemeContract documents the preview URI scheme for LLM consumers
// that navigate between source documents and their rendered previews.
const PreviewSchemeContract = `# Sowilo Preview URI Scheme

A preview URI identifies the rendered HTML view of a Markdown document.
It is derived from the document's own URI and can always be resolved back.

## Derivation

Given a document URI such as:

` + "```" + `
file:///workspace/guides/intro.md
` + "```" + `

the preview URI is built by:

1. switching the scheme to ` + "`" + `markdown` + "`" + `,
2. appending ` + "`" + `.rendered` + "`" + ` to the path,
3. storing the complete original URI, percent-encoded, in the query string.

Result:

` + "```" + `
markdown:/workspace/guides/intro.md.rendered?file%3A%2F%2F%2Fworkspace%2Fguides%2Fintro.md
` + "```" + `

## Resolution

To recover the source document from a preview URI, percent-decode the query
string and parse it as a URI. URIs that do not carry the ` + "`" + `markdown` + "`" + ` scheme
or whose query is empty or undecodable are not preview URIs.

## Rules

1. The query string holds the ONLY authoritative copy of the original URI.
   Never reconstruct the source path from the preview path.
2. Derivation then resolution is lossless: the recovered URI is identical
   to the original.
3. The ` + "`" + `.rendered` + "`" + ` suffix exists so path-based tooling can distinguish a
   preview from its source; it carries no other meaning.
4. Rendered pages tag headings and paragraphs with ` + "`" + `data-line` + "`" + ` attributes
   holding the 1-based source line, for scroll synchronisation.
5. Images and stylesheets referenced by relative path resolve under the
   workspace root via the ` + "`" + `/assets/` + "`" + ` endpoint.
`
