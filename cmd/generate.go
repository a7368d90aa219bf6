package main

//go:generate echo "Generating templ files..."
//go:generate bash -c "export PATH=$$PATH:~/go/bin && templ generate -path ../views"
//go:generate echo "templ files generated"

// This file contains go:generate directives that process the templ
// templates under views/. The generated *_templ.go files are committed,
// so rerunning is only needed after editing a .templ file:
//
// go generate ./...
