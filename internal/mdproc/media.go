package mdproc

import (
	"encoding/json"
	"fmt"
	"html"
	"strings"
)

const youtubeAllow = "accelerometer; autoplay; clipboard-write; encrypted-media; gyroscope; picture-in-picture"

// EmbedVideosStatic rewrites bare video links into playable HTML5 markup for
// static output: a <video> element for content-delivery links (poster derived
// by swapping the extension to .jpg) and an <iframe> for video-sharing links.
func EmbedVideosStatic(body string) string {
	body = reCloudinaryVideo.ReplaceAllStringFunc(body, func(match string) string {
		m := reCloudinaryVideo.FindStringSubmatch(match)
		cloudID, version, filename := m[3], m[4], m[5]
		videoURL := fmt.Sprintf("https://res.cloudinary.com/%s/video/upload/v%s/%s", cloudID, version, filename)
		posterURL := strings.Replace(videoURL, ".mp4", ".jpg", 1)
		return fmt.Sprintf(`<div class="video-container">`+
			`<video width="640" height="360" controls poster=%q>`+
			`<source src=%q type="video/mp4">`+
			`Your browser does not support the video tag.</video></div>`,
			posterURL, videoURL)
	})

	return reYouTubeLink.ReplaceAllStringFunc(body, func(match string) string {
		m := reYouTubeLink.FindStringSubmatch(match)
		title, videoID := m[1], m[3]
		embedURL := "https://www.youtube.com/embed/" + videoID
		return fmt.Sprintf(`<div class="video-container">`+
			`<iframe width="854" height="480" src=%q title=%q frameborder="0" allow=%q allowfullscreen></iframe></div>`,
			embedURL, html.EscapeString(title), youtubeAllow)
	})
}

// embedBlock is the structured payload the hosted service reads between
// [block:...] delimiter markers.
type embedBlock struct {
	HTML        string `json:"html"`
	URL         string `json:"url,omitempty"`
	Title       string `json:"title,omitempty"`
	Favicon     string `json:"favicon,omitempty"`
	Image       string `json:"image,omitempty"`
	Provider    string `json:"provider,omitempty"`
	Href        string `json:"href,omitempty"`
	TypeOfEmbed string `json:"typeOfEmbed,omitempty"`
}

// EmbedVideosHosted rewrites bare video links into the hosted service's
// structured embed blocks: [block:html] for content-delivery videos,
// [block:embed] for video-sharing links. Sub-URLs nested inside the embed
// widget URL are percent-encoded (colons and slashes) because the widget
// requires pre-encoded payload parameters.
func EmbedVideosHosted(body string) string {
	body = reCloudinaryVideo.ReplaceAllStringFunc(body, func(match string) string {
		m := reCloudinaryVideo.FindStringSubmatch(match)
		cloudID, version, filename := m[3], m[4], m[5]
		videoURL := fmt.Sprintf("https://res.cloudinary.com/%s/video/upload/v%s/%s", cloudID, version, filename)
		block := embedBlock{
			HTML: fmt.Sprintf(`<div style="display: flex;justify-content: center;">`+
				`<video width="640" height="360" style="border-radius: 10px;" controls poster=%q>`+
				`<source src=%q type="video/mp4">`+
				`Your browser does not support the video tag.</video></div>`,
				strings.Replace(videoURL, ".mp4", ".jpg", 1), videoURL),
		}
		return renderBlock("html", block)
	})

	return reYouTubeLink.ReplaceAllStringFunc(body, func(match string) string {
		m := reYouTubeLink.FindStringSubmatch(match)
		title, videoID := m[1], m[3]
		watchURL := "https://www.youtube.com/watch?v=" + videoID
		embedURL := "https://www.youtube.com/embed/" + videoID + "?feature=oembed"
		thumbnailURL := fmt.Sprintf("https://i.ytimg.com/vi/%s/hqdefault.jpg", videoID)

		widgetSrc := fmt.Sprintf(
			"//cdn.embedly.com/widgets/media.html?src=%s&display_name=YouTube&url=%s&image=%s&type=text%%2Fhtml&schema=youtube",
			encodeEmbedURL(embedURL), encodeEmbedURL(watchURL), encodeEmbedURL(thumbnailURL))

		block := embedBlock{
			HTML: fmt.Sprintf(`<iframe class="embedly-embed" src=%q `+
				`width="854" height="480" scrolling="no" title="YouTube embed" frameborder="0" `+
				`allow="autoplay; fullscreen; encrypted-media; picture-in-picture;" `+
				`allowfullscreen="true"></iframe>`, widgetSrc),
			URL:         watchURL,
			Title:       title,
			Favicon:     "https://www.youtube.com/favicon.ico",
			Image:       thumbnailURL,
			Provider:    "https://www.youtube.com/",
			Href:        watchURL,
			TypeOfEmbed: "youtube",
		}
		return renderBlock("embed", block)
	})
}

// encodeEmbedURL percent-encodes colons and slashes only; the embed widget
// expects the rest of the URL untouched.
func encodeEmbedURL(u string) string {
	u = strings.ReplaceAll(u, ":", "%3A")
	return strings.ReplaceAll(u, "/", "%2F")
}

// renderBlock wraps a payload in the hosted service's literal block markers.
// HTML escaping is disabled so the embedded markup stays readable; the block
// body is JSON, not HTML context.
func renderBlock(kind string, block embedBlock) string {
	var buf strings.Builder
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(block); err != nil {
		// embedBlock contains only strings; Encode cannot fail on it.
		return ""
	}
	return fmt.Sprintf("[block:%s]\n%s[/block]", kind, buf.String())
}
