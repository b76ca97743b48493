// Package studyindex generates the Markdown index pages of a study-material
// site from the PDF files found on disk.
//
// # Layout
//
// The generator expects one directory per category under an assets root:
//
//	<root>/
//	├── index.md            (generated top-level index)
//	└── assert/
//	    ├── cs/
//	    │   ├── index.md    (generated folder index)
//	    │   └── notes.pdf
//	    └── math/
//	        ├── index.md
//	        ├── algebra.pdf
//	        └── calc.pdf
//
// # Quick Start
//
//	gen := studyindex.New(osfs.New(root))
//	report, err := gen.Run()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(report.Written())
//
// Run takes a single snapshot of the assets root (a Catalog), then writes the
// top-level index and one index per category folder from that snapshot.
// Existing pages are overwritten in full. Folders and documents are listed in
// lexicographic order, so an unchanged tree always produces identical output.
//
// # Customization
//
// Page texts, icons, file names and the document extension are set with
// options:
//
//	gen := studyindex.New(fsys,
//	    studyindex.WithAssetsDir("materials"),
//	    studyindex.WithExtension(".pdf"),
//	    studyindex.WithIcons(studyindex.NewIconResolver(map[string]string{"chem": "flask"}, "")),
//	    studyindex.WithLayout(layout),
//	    studyindex.WithLogger(logrus.StandardLogger()),
//	)
//
// # Checking Pages
//
// Checker re-reads generated pages and reports missing titles and links whose
// targets do not exist:
//
//	report, err := studyindex.NewChecker(fsys).Check(gen.Pages(catalog))
package studyindex
