// Package pdf2rmdoc converts PDF files to reMarkable document packages
// (.rmdoc) by driving the external Drawj2d converter.
//
// # Quick Start
//
//	conv := pdf2rmdoc.NewConverter()
//
//	result, err := conv.Convert(ctx, pdf2rmdoc.Request{
//	    Input: "report.pdf",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(result.OutputPath) // /abs/path/report.rmdoc
//
// # Conversion Pipeline
//
// Convert runs these steps in order and stops at the first failure:
//
//  1. Validate the input (exists, .pdf extension, regular file)
//  2. Compute the output path (explicit, default directory, or input with .rmdoc)
//  3. Create the output's parent directories
//  4. Reject an output path that is an existing directory
//  5. Resolve the drawj2d executable
//  6. Run drawj2d -Trmdoc [-r<n>] -o <output> with "image <input>" on stdin
//  7. Verify the output file exists
//
// # Locating Drawj2d
//
// The converter is looked up in this order:
//
//   - an explicit path (WithConverterPath); must exist
//   - the PDF2COLOR_RMDOC_DRAWJ2D environment variable; skipped if missing
//   - a configured path (WithConfiguredPath); skipped if missing
//   - "drawj2d" on PATH
//
// # Resolution
//
// Request.Resolution is forwarded verbatim as -r<n>. Drawj2d uses it to
// scale output for a device; 229 targets the reMarkable Paper Pro.
package pdf2rmdoc
