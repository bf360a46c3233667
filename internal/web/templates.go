package web

import "html/template"

var indexTemplate = template.Must(template.New("index").Parse(`<!DOCTYPE html>
<html lang="pt-BR">
<head>
  <meta charset="utf-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>ClareIA</title>
  <style>
    body { font-family: -apple-system, 'Segoe UI', Roboto, Arial, sans-serif; max-width: 640px; margin: 40px auto; padding: 0 20px; color: #333; }
    .card { background: #f8f9fa; border-radius: 10px; padding: 24px; border-left: 4px solid #667eea; }
    button { background: #667eea; color: white; border: none; border-radius: 6px; padding: 10px 24px; font-size: 15px; cursor: pointer; }
    label { display: block; margin: 12px 0; }
  </style>
</head>
<body>
  <h1>🎙️ ClareIA</h1>
  <p>Envie um áudio de reunião (.mp3, .wav ou .m4a) para transcrever e gerar a ata.</p>
  <div class="card">
    <form action="/transcribe" method="post" enctype="multipart/form-data">
      <label><input type="file" name="audio" accept=".mp3,.wav,.m4a" required></label>
      <label><input type="checkbox" name="summarize" checked> Gerar ata/insights</label>
      <button type="submit">Processar</button>
    </form>
  </div>
</body>
</html>
`))

var resultTemplate = template.Must(template.New("result").Parse(`<!DOCTYPE html>
<html lang="pt-BR">
<head>
  <meta charset="utf-8">
  <title>ClareIA — {{.FileName}}</title>
  <style>
    body { font-family: -apple-system, 'Segoe UI', Roboto, Arial, sans-serif; max-width: 720px; margin: 40px auto; padding: 0 20px; color: #333; }
    pre { background: #f8f9fa; border-radius: 6px; padding: 16px; white-space: pre-wrap; }
    .minutes { background: #e8f4f8; border-radius: 6px; padding: 16px; }
    a { color: #667eea; }
  </style>
</head>
<body>
  <h1>✅ {{.FileName}}</h1>
  {{if .HasMinutes}}
  <h2>Ata</h2>
  <div class="minutes">{{.Minutes}}</div>
  {{end}}
  <h2>Transcrição</h2>
  <pre>{{.Transcript}}</pre>
  <p><a href="/">← Processar outro arquivo</a></p>
</body>
</html>
`))

var errorTemplate = template.Must(template.New("error").Parse(`<!DOCTYPE html>
<html lang="pt-BR">
<head><meta charset="utf-8"><title>ClareIA — erro</title></head>
<body style="font-family: sans-serif; max-width: 640px; margin: 40px auto; color: #333;">
  <h1>❌ Algo deu errado</h1>
  <p>{{.}}</p>
  <p><a href="/">← Voltar</a></p>
</body>
</html>
`))
