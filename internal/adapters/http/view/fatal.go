package view

import "net/http"

// FatalPage replaces the whole page when it cannot be rendered at all. It
// depends on no template so it survives broken templates.
const FatalPage = `<!DOCTYPE html>
<html lang="fr">
<head><meta charset="utf-8"><title>Erreur</title>
<link rel="stylesheet" href="/static/css/site.css"></head>
<body>
<main class="fatal" role="alert">
<h1>Une erreur est survenue</h1>
<p>La page n'a pas pu être affichée. Veuillez la recharger.</p>
<a href="/">Recharger la page</a>
</main>
</body>
</html>
`

// WriteFatal writes FatalPage with a 500 status.
func WriteFatal(w http.ResponseWriter) {
	WriteFatalStatus(w, http.StatusInternalServerError)
}

// WriteFatalStatus writes FatalPage with the given status.
func WriteFatalStatus(w http.ResponseWriter, status int) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(FatalPage))
}
