package export

// componentTemplate renders the page wrapper. Every {{...}} value is either a
// digest or JSON produced by marshalScriptSafe.
const componentTemplate = `// AUTO-GENERATED FILE - DO NOT EDIT.
// Generated by structdata; rerun "structdata generate" after changing site content.
// Structured data digest: {{.Digest}}
import React from 'react';
import Head from '@docusaurus/Head';
import {useLocation} from '@docusaurus/router';

const baseUrl = {{.BaseURL}};
const locales = {{.Locales}};
const defaultLocale = {{.DefaultLocale}};

// schema.org types emitted by this file, by role.
export const schemaTypes = {{.SchemaTypes}};

// Nodes rendered on every page.
const siteSchema = {{.SiteSchema}};

// Article and BlogPosting nodes keyed by route. Author and publisher are
// copied inline into each node.
const articlesWithAuthorPublisher = {{.Articles}};

// Service nodes keyed by route.
const servicesByRoute = {{.Services}};

function normalizeRoute(pathname) {
  let route = pathname || '/';
  if (baseUrl !== '/' && route.startsWith(baseUrl)) {
    route = '/' + route.slice(baseUrl.length);
  }
  route = route.replace(/\/+$/, '') || '/';
  for (const locale of locales) {
    if (locale === defaultLocale) {
      continue;
    }
    if (route === '/' + locale) {
      return '/';
    }
    if (route.startsWith('/' + locale + '/')) {
      return route.slice(locale.length + 1);
    }
  }
  return route;
}

function jsonLd(node) {
  return {__html: JSON.stringify(node).replace(/</g, '\\u003c')};
}

export default function Root({children}) {
  const {pathname} = useLocation();
  const route = normalizeRoute(pathname);
  const nodes = siteSchema.slice();
  if (articlesWithAuthorPublisher[route]) {
    nodes.push(articlesWithAuthorPublisher[route]);
  }
  if (servicesByRoute[route]) {
    nodes.push(servicesByRoute[route]);
  }
  return (
    <>
      <Head>
        {nodes.map((node, i) => (
          <script key={i} type='application/ld+json' dangerouslySetInnerHTML={jsonLd(node)} />
        ))}
      </Head>
      {children}
    </>
  );
}
`
