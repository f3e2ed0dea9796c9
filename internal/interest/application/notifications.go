package application

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/studyabroadscholarships/interest-api/internal/interest/domain"
)

const (
	submissionSubject = "Rotary Youth Exchange Form Submission"
	contactAddress    = "StudyAbroadScholarshipsWebsite@outlook.com"
)

// sendDistrictNotifications delivers the representative notice to the
// union of the matched districts' addresses and the confirmation to the
// submitter. Both sends are always attempted; their failures are merged.
func (s *intakeService) sendDistrictNotifications(ctx context.Context, addresses, districts []string, submission *domain.Submission) []string {
	errs := s.notifier.Send(ctx, addresses, submissionSubject, districtBody(districts, submission))
	confirmation := confirmationBody(districtResponder(districts), submission)
	errs = append(errs, s.notifier.Send(ctx, []string{submission.Email}, submissionSubject, confirmation)...)
	return errs
}

// sendCountryNotifications delivers the representative notice to the
// country addresses and the confirmation to the submitter.
func (s *intakeService) sendCountryNotifications(ctx context.Context, addresses []string, submission *domain.Submission) []string {
	errs := s.notifier.Send(ctx, addresses, submissionSubject, countryBody(submission))
	confirmation := confirmationBody(titleCase(submission.CountryOfResidence), submission)
	errs = append(errs, s.notifier.Send(ctx, []string{submission.Email}, submissionSubject, confirmation)...)
	return errs
}

// sendNotCertifiedNotification tells the submitter their country is not
// eligible for routing. No representative is notified.
func (s *intakeService) sendNotCertifiedNotification(ctx context.Context, submission *domain.Submission) []string {
	return s.notifier.Send(ctx, []string{submission.Email}, submissionSubject, rejectionBody(submission))
}

// sendNotFoundNotifications alerts the operator that a submission could
// not be routed and tells the submitter someone will reach out. Both
// sends are always attempted.
func (s *intakeService) sendNotFoundNotifications(ctx context.Context, submission *domain.Submission) []string {
	errs := s.notifier.Send(ctx, []string{s.operatorEmail}, submissionSubject, operatorNotFoundBody(submission))
	errs = append(errs, s.notifier.Send(ctx, []string{submission.Email}, submissionSubject, notFoundBody(submission))...)
	return errs
}

func titleCase(value string) string {
	return cases.Title(language.English).String(value)
}

func districtResponder(districts []string) string {
	if len(districts) == 1 {
		return "Rotary District " + districts[0]
	}
	return "Rotary Districts " + strings.Join(districts, ", ")
}

func districtGreeting(districts []string) string {
	if len(districts) == 1 {
		return fmt.Sprintf("<h4>Hello RYE District %s Representatives,</h4>", districts[0])
	}
	joined := strings.Join(districts[:len(districts)-1], ", ") + " and " + districts[len(districts)-1]
	greeting := fmt.Sprintf("<h4>Hello RYE Districts %s Representatives,</h4>", joined)
	greeting += "<p>We are not sure what district this student is a part of, so this email is going to all districts present in this zip code.</p>"
	return greeting
}

func districtBody(districts []string, submission *domain.Submission) string {
	var b strings.Builder
	b.WriteString(districtGreeting(districts))
	b.WriteString(studentInformationHTML(submission))
	b.WriteString("<p>They have also been informed of your district number and been told to expect a follow up within a couple of weeks.</p>")
	b.WriteString(representativeFooter("district"))
	return b.String()
}

func countryBody(submission *domain.Submission) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("<h4>Hello RYE %s Representatives,</h4>", titleCase(submission.CountryOfResidence)))
	b.WriteString(studentInformationHTML(submission))
	b.WriteString("<p>They have also been informed that their submission was forwarded and been told to expect a follow up within a couple of weeks.</p>")
	b.WriteString(representativeFooter("country"))
	return b.String()
}

func representativeFooter(scope string) string {
	return fmt.Sprintf(`<h4>If you have any questions, advice for the process, to add or remove email addresses for your %s, or to get a list of previous submissions, please reach out to %s.</h4>
<p>Thank you for your support of <a href="https://studyabroadscholarships.org/">studyabroadscholarships.org</a>!</p>`, scope, contactAddress)
}

func confirmationBody(responder string, submission *domain.Submission) string {
	return fmt.Sprintf(`<h4>Hello %s,</h4>
<div>Thank you for your interest in StudyAbroadScholarships.org. A representative from rotary youth exchange in %s should follow up with you within 2 weeks.</div>
<div>There is a lot of detail on the website to answer any questions that you may have. And if you do not hear back from a rotarian within 2 weeks, please reach out to %s.</div>
<p>We look forward to hearing from you!</p>`, submission.Name, responder, contactAddress)
}

func rejectionBody(submission *domain.Submission) string {
	return fmt.Sprintf(`<h4>Hello %s,</h4>
<div>Thank you for your interest in StudyAbroadScholarships.org. Unfortunately rotary youth exchange in %s is not currently certified to accept new exchange students, so your submission is not eligible to be forwarded.</div>
<div>If you believe this is a mistake, or want to know about other options, please reach out to %s.</div>`, submission.Name, titleCase(submission.CountryOfResidence), contactAddress)
}

func notFoundBody(submission *domain.Submission) string {
	return fmt.Sprintf(`<h4>Hello %s,</h4>
<div>Thank you for your interest in StudyAbroadScholarships.org. We could not automatically match your submission to a rotary youth exchange representative, so a member of our team will review it and reach out to you directly.</div>
<div>If you have any questions in the meantime, please contact %s.</div>`, submission.Name, contactAddress)
}

func operatorNotFoundBody(submission *domain.Submission) string {
	var b strings.Builder
	b.WriteString("<h4>A submission could not be routed to a district or country representative.</h4>")
	b.WriteString(studentInformationHTML(submission))
	b.WriteString(fmt.Sprintf("<p>Submission ID: %s. Please follow up with the applicant manually.</p>", submission.ID))
	return b.String()
}

func studentInformationHTML(submission *domain.Submission) string {
	yesNo := func(v bool) string {
		if v {
			return "yes"
		}
		return "no"
	}

	var b strings.Builder
	b.WriteString("<h3>Here is the information from the form submission:</h3>")
	row := func(label, value string) {
		b.WriteString(fmt.Sprintf("<div><b>%s:</b> %s</div>", label, value))
	}
	row("Name", submission.Name)
	row("Interested in going on exchange", yesNo(submission.InterestOutbound))
	row("Interested in hosting", yesNo(submission.InterestHosting))
	row("Age", submission.Age)
	row("Gender", submission.Gender)
	row("Email", submission.Email)
	row("Phone", submission.Phone)
	row("Country of residence", submission.CountryOfResidence)
	row("State", submission.State)
	row("City", submission.City)
	row("Zipcode", submission.Zipcode)
	row("Country choice one", submission.CountryChoiceOne)
	row("Country choice two", submission.CountryChoiceTwo)
	row("Country choice three", submission.CountryChoiceThree)
	row("Country choice four", submission.CountryChoiceFour)
	row("Question", submission.Question)
	return b.String()
}
