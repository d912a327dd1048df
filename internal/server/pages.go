package server

import (
	"html/template"
	"net/url"
)

// pathEscape keeps names containing '?', '#' or '%' intact inside links
var pageFuncs = template.FuncMap{"pathEscape": url.PathEscape}

var homePage = template.Must(template.New("home").Parse(`<html>
    <head><title>Content Server</title></head>
    <body>
        <h1>Welcome to the Content Server</h1>
        <p>You can upload and view files here.</p>

        <h2>Upload a File</h2>
        <form action="/upload" enctype="multipart/form-data" method="post">
            <input name="file" type="file">
            <input type="submit" value="Upload">
        </form>

        <h2>Uploaded Files</h2>
        <a href="/files">View Uploaded Files</a>
    </body>
</html>
`))

var listPage = template.Must(template.New("list").Funcs(pageFuncs).Parse(`{{if not .}}<h3>No files uploaded yet.</h3><a href="/">Back to Home</a>
{{else}}<html>
    <body>
        <h2>Uploaded Files</h2>
        <ul>{{range .}}<li><a href="/view/{{pathEscape .Name}}" target="_blank">{{.Name}}</a></li>{{end}}</ul>
        <a href="/">Back to Home</a>
    </body>
</html>
{{end}}`))

var viewPage = template.Must(template.New("view").Funcs(pageFuncs).Parse(`<h2>{{.File.Name}}</h2>
{{- if eq .Mode "image"}}
<img src="/files/{{pathEscape .File.Name}}" width="500">
{{- else if eq .Mode "video"}}
<video width="500" controls>
    <source src="/files/{{pathEscape .File.Name}}" type="{{.File.ContentType}}">
    Your browser does not support video playback.
</video>
{{- else if eq .Mode "pdf"}}
<embed src="/files/{{pathEscape .File.Name}}" type="application/pdf" width="800" height="600">
{{- else}}
<a href="/files/{{pathEscape .File.Name}}" download>Download File</a>
{{- end}}
`))
