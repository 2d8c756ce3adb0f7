package mailer

import (
	"bytes"
	"html/template"
)

// RenderEventConfirmation returns the subject and HTML body for an
// event RSVP confirmation email. Data keys: name, date, time,
// location, url. Missing keys render empty.
func RenderEventConfirmation(data map[string]string) (string, string, error) {
	subject := "Yrdly - You're going to " + data["name"]

	tmpl := `<!DOCTYPE html>
<html>
<head>
    <meta charset="utf-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
</head>
<body style="margin:0;padding:0;background-color:#f4f7f4;font-family:'Segoe UI',Tahoma,Geneva,Verdana,sans-serif;">
    <div style="max-width:500px;margin:40px auto;background:#ffffff;border-radius:16px;overflow:hidden;border:1px solid rgba(34,139,87,0.2);">
        <!-- Header -->
        <div style="background:linear-gradient(135deg,#228b57 0%,#34d399 100%);padding:32px;text-align:center;">
            <h1 style="color:#fff;margin:0;font-size:28px;font-weight:700;">🏡 Yrdly</h1>
            <p style="color:rgba(255,255,255,0.85);margin:8px 0 0;font-size:14px;">Event Confirmation</p>
        </div>

        <!-- Body -->
        <div style="padding:32px;">
            <p style="color:#1f2937;font-size:16px;line-height:1.6;margin:0 0 24px;">
                You're confirmed for <strong style="color:#228b57;">{{.Name}}</strong>!
            </p>

            <div style="background:rgba(34,139,87,0.06);border:1px solid rgba(34,139,87,0.25);border-radius:12px;padding:24px;margin:0 0 24px;">
                <p style="color:#374151;font-size:14px;margin:0 0 8px;">📅 <strong>{{.Date}}</strong> at <strong>{{.Time}}</strong></p>
                <p style="color:#374151;font-size:14px;margin:0;">📍 {{.Location}}</p>
            </div>

            {{if .URL}}
            <p style="color:#6b7280;font-size:13px;line-height:1.5;margin:0 0 8px;">
                Event details: <a href="{{.URL}}" style="color:#228b57;">{{.URL}}</a>
            </p>
            {{end}}
            <p style="color:#6b7280;font-size:13px;line-height:1.5;margin:0;">
                See you in the neighborhood!
            </p>
        </div>

        <!-- Footer -->
        <div style="padding:16px 32px;border-top:1px solid rgba(34,139,87,0.1);text-align:center;">
            <p style="color:#9ca3af;font-size:12px;margin:0;">© 2026 Yrdly. All rights reserved.</p>
        </div>
    </div>
</body>
</html>`

	t, err := template.New("eventConfirmation").Parse(tmpl)
	if err != nil {
		return "", "", err
	}

	var buf bytes.Buffer
	err = t.Execute(&buf, map[string]interface{}{
		"Name":     data["name"],
		"Date":     data["date"],
		"Time":     data["time"],
		"Location": data["location"],
		"URL":      data["url"],
	})
	return subject, buf.String(), err
}
