package server

import "net/http"

// indexHTML is the paste form served at the root. It posts the source
// to the API and swaps the returned artifact into the preview pane.
const indexHTML = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>codia</title>
<style>
  body { font-family: sans-serif; max-width: 60rem; margin: 2rem auto; padding: 0 1rem; }
  textarea { width: 100%; height: 18rem; font-family: monospace; }
  #preview { border: 1px solid #ccc; margin-top: 1rem; min-height: 4rem; }
  #preview img { max-width: 100%; }
  .error { color: #a33; }
</style>
</head>
<body>
<h1>codia</h1>
<p>Paste Go source below to render a class diagram.</p>
<textarea id="source" placeholder="package main&#10;&#10;type Animal struct { Name string }"></textarea>
<p><button id="render">Render</button></p>
<div id="preview"></div>
<script>
document.getElementById("render").addEventListener("click", async () => {
  const preview = document.getElementById("preview");
  preview.textContent = "rendering...";
  const resp = await fetch("/api/diagrams", {
    method: "POST",
    headers: {"Content-Type": "application/json"},
    body: JSON.stringify({source: document.getElementById("source").value}),
  });
  const body = await resp.json();
  if (!resp.ok) {
    preview.innerHTML = '<p class="error"></p>';
    preview.firstChild.textContent = body.message;
    return;
  }
  preview.innerHTML = '<img src="' + body.url + '" alt="class diagram">';
});
</script>
</body>
</html>
`

// handleIndex serves the paste form.
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write([]byte(indexHTML))
}
