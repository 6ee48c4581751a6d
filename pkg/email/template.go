package email

import "fmt"

// guideTemplate is the fixed guide-delivery email. Interpolation points:
// greeting name, button href, fallback link href, fallback link text.
const guideTemplate = `<!DOCTYPE html>
<html>
<head>
  <meta charset="utf-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>Your First-Time Buyer Guide</title>
</head>
<body style="margin:0;padding:0;background-color:#f4f5f7;font-family:Helvetica,Arial,sans-serif;">
  <table role="presentation" width="100%%" cellpadding="0" cellspacing="0" style="background-color:#f4f5f7;padding:24px 0;">
    <tr>
      <td align="center">
        <table role="presentation" width="600" cellpadding="0" cellspacing="0" style="background-color:#ffffff;border-radius:8px;overflow:hidden;">
          <tr>
            <td style="background-color:#1f3a5f;padding:28px 40px;">
              <span style="color:#ffffff;font-size:20px;font-weight:bold;">Keystone Home Group</span>
            </td>
          </tr>
          <tr>
            <td style="padding:36px 40px 16px;">
              <p style="font-size:18px;color:#1f2933;margin:0 0 16px;">Hi %s,</p>
              <p style="font-size:15px;color:#3e4c59;line-height:1.6;margin:0 0 16px;">
                Thanks for requesting our First-Time Buyer Guide. It walks you
                through every step of buying your first home, from getting
                pre-approved to getting the keys.
              </p>
              <p style="font-size:15px;color:#3e4c59;line-height:1.6;margin:0 0 28px;">
                Your guide is ready. Use the button below to open it.
              </p>
            </td>
          </tr>
          <tr>
            <td align="center" style="padding:0 40px 28px;">
              <a href="%s" style="display:inline-block;background-color:#d4793a;color:#ffffff;text-decoration:none;font-size:16px;font-weight:bold;padding:14px 36px;border-radius:6px;">Open Your Guide</a>
            </td>
          </tr>
          <tr>
            <td style="padding:0 40px 36px;">
              <p style="font-size:13px;color:#7b8794;line-height:1.6;margin:0;">
                If the button doesn't work, copy and paste this link into your
                browser:<br>
                <a href="%s" style="color:#1f3a5f;word-break:break-all;">%s</a>
              </p>
            </td>
          </tr>
          <tr>
            <td style="background-color:#f4f5f7;padding:20px 40px;">
              <p style="font-size:12px;color:#9aa5b1;margin:0;">
                Keystone Home Group &middot; You received this email because you
                requested our buyer guide.
              </p>
            </td>
          </tr>
        </table>
      </td>
    </tr>
  </table>
</body>
</html>`

// RenderGuideEmail returns the guide-delivery email HTML for one lead. Pure
// string interpolation: same inputs always produce identical output.
func RenderGuideEmail(firstName, accessURL string) string {
	return fmt.Sprintf(guideTemplate, firstName, accessURL, accessURL, accessURL)
}
