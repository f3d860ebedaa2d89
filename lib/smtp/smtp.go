package smtp

import (
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/emersion/go-sasl"
	"github.com/emersion/go-smtp"
	log "github.com/sirupsen/logrus"
)

var Instance Provider

type Provider interface {
	SendEMail(to, subject, message string) error
	SendEMailWithAttachment(to, subject, message, fileName string, file []byte) error
}

func Connect(user, password, host, port, from string, tlsEnabled bool) error {
	Instance = &impl{
		user:       user,
		password:   password,
		host:       host,
		port:       port,
		from:       from,
		tlsEnabled: tlsEnabled,
	}
	return nil
}

type impl struct {
	user       string
	password   string
	host       string
	port       string
	from       string
	tlsEnabled bool
}

func (i impl) SendEMail(to, subject, message string) (err error) {
	logger := log.WithField("recipient", to)
	if i.user == "" || i.host == "" || i.port == "" {
		logger.Warn("email not sent, smtp client is not configured")
		return nil
	}
	sendTo := []string{
		to,
	}
	auth := sasl.NewPlainClient("", i.user, i.password)
	mimeHeaders := "MIME-version: 1.0;\nContent-Type: text/plain; charset=\"UTF-8\";\r\n"
	body := strings.NewReader(fmt.Sprintf("From: %s\nTo: %s\nSubject: %s\n%s\r\n%s\r\n", i.from, to, subject, mimeHeaders, message))

	err = i.send(sendTo, auth, body)
	if err != nil {
		log.WithError(err).Error("failed to send email")
		return err
	}
	logger.Info("email sent")
	return nil
}

// SendEMailWithAttachment sends a multipart message with a single
// base64-encoded attachment.
func (i impl) SendEMailWithAttachment(to, subject, message, fileName string, file []byte) (err error) {
	logger := log.WithField("recipient", to)
	if i.user == "" || i.host == "" || i.port == "" {
		logger.Warn("email not sent, smtp client is not configured")
		return nil
	}
	sendTo := []string{
		to,
	}
	auth := sasl.NewPlainClient("", i.user, i.password)

	boundary := "hiring-attachment-boundary"
	sb := strings.Builder{}
	sb.WriteString(fmt.Sprintf("From: %s\r\n", i.from))
	sb.WriteString(fmt.Sprintf("To: %s\r\n", to))
	sb.WriteString(fmt.Sprintf("Subject: %s\r\n", subject))
	sb.WriteString("MIME-Version: 1.0\r\n")
	sb.WriteString(fmt.Sprintf("Content-Type: multipart/mixed; boundary=%s\r\n\r\n", boundary))
	sb.WriteString(fmt.Sprintf("--%s\r\n", boundary))
	sb.WriteString("Content-Type: text/plain; charset=\"UTF-8\"\r\n\r\n")
	sb.WriteString(message)
	sb.WriteString("\r\n")
	sb.WriteString(fmt.Sprintf("--%s\r\n", boundary))
	sb.WriteString("Content-Type: application/pdf\r\n")
	sb.WriteString("Content-Transfer-Encoding: base64\r\n")
	sb.WriteString(fmt.Sprintf("Content-Disposition: attachment; filename=%q\r\n\r\n", fileName))
	sb.WriteString(encodeBase64Wrapped(file))
	sb.WriteString(fmt.Sprintf("\r\n--%s--\r\n", boundary))

	err = i.send(sendTo, auth, strings.NewReader(sb.String()))
	if err != nil {
		log.WithError(err).Error("failed to send email with attachment")
		return err
	}
	logger.Info("email with attachment sent")
	return nil
}

func encodeBase64Wrapped(data []byte) string {
	encoded := base64.StdEncoding.EncodeToString(data)
	sb := strings.Builder{}
	for len(encoded) > 76 {
		sb.WriteString(encoded[:76])
		sb.WriteString("\r\n")
		encoded = encoded[76:]
	}
	sb.WriteString(encoded)
	return sb.String()
}

func (i impl) send(sendTo []string, auth sasl.Client, body *strings.Reader) error {
	if i.tlsEnabled {
		return smtp.SendMailTLS(i.host+":"+i.port, auth, i.user, sendTo, body)
	}
	return smtp.SendMail(i.host+":"+i.port, auth, i.user, sendTo, body)
}
