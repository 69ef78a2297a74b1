package host

import (
	"fmt"
	"log/slog"

	"extension-resolver/internal/diagnostic"
	"extension-resolver/internal/resolve"
)

// Apply resolves every site of containingFile and replaces the specifiers of
// the rewritten ones. Non-literal sites and unresolved specifiers are left
// untouched and reported.
func Apply(containingFile string, sites []Site, r *resolve.Resolver) diagnostic.Diagnostics {
	var diags diagnostic.Diagnostics

	logger := slog.Default().With(slog.String("file", containingFile))

	for _, site := range sites {
		line := lineOf(site)

		written, ok := site.Specifier()
		if !ok {
			diags.AddInfo(diagnostic.CodeNonLiteral,
				fmt.Sprintf("%s without a literal specifier left unchanged", site.Kind()),
				containingFile, line, "")

			continue
		}

		res := r.Resolve(containingFile, written)
		if !res.Rewritten {
			if resolve.IsRelative(written) {
				logger.Debug("unresolved relative specifier", slog.String("specifier", written))
				diags.AddWarning(diagnostic.CodeUnresolved, "no matching file, left unchanged",
					containingFile, line, written)
			}

			continue
		}

		site.Replace(res.Specifier)

		if res.Specifier != written {
			logger.Debug("rewrote specifier",
				slog.String("kind", site.Kind().String()),
				slog.String("from", written),
				slog.String("to", res.Specifier),
			)
			diags.AddInfo(diagnostic.CodeRewritten, "rewritten to "+res.Specifier,
				containingFile, line, written)
		}
	}

	return diags
}
